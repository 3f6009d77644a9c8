package controllers

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"

	"rumbo/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Init(zapcore.ErrorLevel); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
