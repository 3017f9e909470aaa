package zk

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProveShotRejectsBadPathLength(t *testing.T) {
	_, _, err := ProveShot(t.TempDir(), 1, 0, nil, big.NewInt(1), big.NewInt(2))
	require.Error(t, err)
}

func TestVerifyShotRejectsMissingRoot(t *testing.T) {
	ok, err := VerifyShot("missing.vk", nil, ShotPublic{}, big.NewInt(1))
	require.False(t, ok)
	require.Error(t, err)
}

func TestVerifyShotRejectsRootMismatch(t *testing.T) {
	pub := ShotPublic{Root: big.NewInt(1), Idx: 3, Hit: 1}
	ok, err := VerifyShot("missing.vk", nil, pub, big.NewInt(2))
	require.False(t, ok)
	require.Error(t, err)
}
