package models

// UsageRecord is one append-only row in the usages table. Rows are written
// after the delivery loop and are never updated or deleted.
type UsageRecord struct {
	ID             int64   `db:"id" json:"id"`
	UserID         string  `db:"user_id" json:"user_id"`
	Username       string  `db:"username" json:"username"`
	Prompt         string  `db:"prompt" json:"prompt"`
	NegativePrompt string  `db:"negative_prompt" json:"negative_prompt"`
	Model          string  `db:"model" json:"model"`
	Seed           *int64  `db:"seed" json:"seed"` // originally requested seed, not the one a sample used
	Width          int     `db:"width" json:"width"`
	Height         int     `db:"height" json:"height"`
	Steps          int     `db:"steps" json:"steps"`
	Samples        int     `db:"samples" json:"samples"`
	CfgScale       float64 `db:"cfg_scale" json:"cfg_scale"`
	Timestamp      string  `db:"timestamp" json:"timestamp"` // UTC, RFC3339
}
