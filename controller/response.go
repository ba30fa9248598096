package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ResCode int64

const (
	CodeSuccess ResCode = 1000 + iota
	CodeInvalidParams
	CodeCooldownActive
	CodePromptBlocked
	CodeUpstreamError
	CodeDecodeError
	CodeEmptyResult
	CodeServerBusy
)

var codeMsgMap = map[ResCode]string{
	CodeSuccess:        "success",
	CodeInvalidParams:  "invalid request parameters",
	CodeCooldownActive: "cooldown active, slow down",
	CodePromptBlocked:  "prompt blocked by keyword filter",
	CodeUpstreamError:  "generation provider error",
	CodeDecodeError:    "generation response decode error",
	CodeEmptyResult:    "no image was generated",
	CodeServerBusy:     "server busy",
}

func (c ResCode) Msg() string {
	msg, ok := codeMsgMap[c]
	if !ok {
		msg = codeMsgMap[CodeServerBusy]
	}
	return msg
}

type ResponseData struct {
	Code ResCode     `json:"code"`
	Msg  interface{} `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func ResponseError(c *gin.Context, code ResCode) {
	c.JSON(http.StatusOK, &ResponseData{Code: code, Msg: code.Msg()})
}

func ResponseErrorWithMsg(c *gin.Context, code ResCode, msg interface{}) {
	c.JSON(http.StatusOK, &ResponseData{Code: code, Msg: msg})
}

func ResponseSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &ResponseData{Code: CodeSuccess, Msg: CodeSuccess.Msg(), Data: data})
}
