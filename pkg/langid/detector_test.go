package langid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectorDetect(t *testing.T) {
	if testing.Short() {
		t.Skip("loading the detection model is slow")
	}
	detector := NewDetector()

	t.Run("japanese", func(t *testing.T) {
		code, confidence, err := detector.Detect("これは素晴らしい製品です。とても気に入っています。")
		require.NoError(t, err)
		assert.Equal(t, "jpn_Jpan", code)
		assert.Greater(t, confidence, 0.5)
	})

	t.Run("greek", func(t *testing.T) {
		code, _, err := detector.Detect("Αυτό είναι ένα εξαιρετικό προϊόν, το συνιστώ ανεπιφύλακτα.")
		require.NoError(t, err)
		assert.Equal(t, "ell_Grek", code)
	})

	t.Run("empty text", func(t *testing.T) {
		code, confidence, err := detector.Detect("   ")
		require.NoError(t, err)
		assert.Equal(t, Unknown, code)
		assert.Zero(t, confidence)
	})
}
