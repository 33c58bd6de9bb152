package zaplogger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetupLogger_Levels(t *testing.T) {
	assert.True(t, SetupLogger(EnvLocal).Core().Enabled(zapcore.DebugLevel))
	assert.True(t, SetupLogger(EnvDev).Core().Enabled(zapcore.DebugLevel))
	assert.False(t, SetupLogger(EnvProd).Core().Enabled(zapcore.DebugLevel))
	assert.True(t, SetupLogger("").Core().Enabled(zapcore.InfoLevel))
}

func TestErr(t *testing.T) {
	field := Err(errors.New("boom"))
	assert.Equal(t, "error", field.Key)
	assert.Equal(t, zapcore.ErrorType, field.Type)
}
