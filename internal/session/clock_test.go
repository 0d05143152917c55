package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 期限の判定は注入した時計に従うこと
func TestSignedCodec_ExpiryFollowsClock(t *testing.T) {
	codec := NewSignedCodec([]byte("test-secret"), time.Hour)

	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issued }

	token, err := codec.Encode(42)
	require.NoError(t, err)

	//期限内
	codec.now = func() time.Time { return issued.Add(30 * time.Minute) }
	id, ok := codec.Decode(token)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	//期限切れ
	codec.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, ok = codec.Decode(token)
	assert.False(t, ok)
}
