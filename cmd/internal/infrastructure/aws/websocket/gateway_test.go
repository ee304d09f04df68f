package websocket

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"github.com/stretchr/testify/assert"
)

func TestTranslateErr(t *testing.T) {
	assert.NoError(t, translateErr(nil))

	wrapped := fmt.Errorf("operation error: %w", &types.GoneException{})
	assert.ErrorIs(t, translateErr(wrapped), ErrGone)

	other := errors.New("throttled")
	assert.Equal(t, other, translateErr(other))
}
