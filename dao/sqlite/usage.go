package sqlite

import (
	"github.com/OnurLexa/DreamGen/models"
)

// UsageDao implements logic.Recorder on top of the package connection.
type UsageDao struct{}

// InsertUsage appends one usage row.
func (UsageDao) InsertUsage(r *models.UsageRecord) error {
	query := `INSERT INTO usages
	(id, user_id, username, prompt, negative_prompt, model, seed, width, height, steps, samples, cfg_scale, timestamp)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := Db.Exec(query,
		r.ID, r.UserID, r.Username, r.Prompt, r.NegativePrompt, r.Model,
		r.Seed, r.Width, r.Height, r.Steps, r.Samples, r.CfgScale, r.Timestamp)
	return err
}

// ListUsageByUser returns the newest usage rows of one user, newest first.
func ListUsageByUser(userID string, limit int) ([]models.UsageRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	records := make([]models.UsageRecord, 0, limit)
	query := `SELECT id, user_id, username, prompt, negative_prompt, model, seed, width, height, steps, samples, cfg_scale, timestamp
	FROM usages WHERE user_id = ? ORDER BY id DESC LIMIT ?`
	err := Db.Select(&records, query, userID, limit)
	return records, err
}
