// Package fair implements the optional fair-play mode: at setup the engine
// commits to the enemy board's ship layout, and every first-time shot
// resolution carries a proof that the reported hit/miss matches the
// commitment. The player can't see the ships, but can check the engine
// never moved them.
package fair

import (
	"fmt"

	"battleship-cli/internal/commit"
	"battleship-cli/internal/game"
	"battleship-cli/internal/zk"
)

// ShotProof is one shot's proof together with its public inputs.
type ShotProof struct {
	Proof  []byte        `json:"proof"`
	Public zk.ShotPublic `json:"public"`
}

// Referee owns the commitment to the enemy board and produces/checks a
// proof per resolved shot. The committed bits and salt never leave it.
type Referee struct {
	keysDir string
	size    int
	bits    []uint8
	com     *commit.BoardCommitment
}

// NewReferee commits to the board's initial ship layout and ensures the
// proving/verifying keys exist under keysDir.
func NewReferee(keysDir string, b *game.Board) (*Referee, error) {
	if b.Size*b.Size > commit.Leaves {
		return nil, fmt.Errorf("board has %d cells, commitment supports at most %d", b.Size*b.Size, commit.Leaves)
	}
	if err := zk.EnsureShotKeys(keysDir); err != nil {
		return nil, fmt.Errorf("prepare shot keys: %w", err)
	}

	bits := b.ShipBits()
	com, err := commit.Commit(bits)
	if err != nil {
		return nil, fmt.Errorf("commit board: %w", err)
	}
	return &Referee{keysDir: keysDir, size: b.Size, bits: bits, com: com}, nil
}

// RootHex is the published commitment root, shown to the player at setup.
func (r *Referee) RootHex() string { return r.com.RootHex() }

// ProveResolution proves that the hit/miss reported for (row, col) equals
// the committed cell. Call it once per cell, on first resolution only.
func (r *Referee) ProveResolution(row, col int, hit bool) (*ShotProof, error) {
	idx := row*r.size + col
	if idx < 0 || idx >= len(r.bits) {
		return nil, fmt.Errorf("prove shot at (%d,%d): %w", row, col, game.ErrOutOfBounds)
	}

	bit := r.bits[idx]
	if want := bit == 1; want != hit {
		// The caller reported something other than the committed cell; an
		// honest engine can't prove that, so refuse before trying.
		return nil, fmt.Errorf("reported hit=%v contradicts committed cell at (%d,%d)", hit, row, col)
	}

	path, err := r.com.Path(idx)
	if err != nil {
		return nil, err
	}
	proof, pub, err := zk.ProveShot(r.keysDir, bit, idx, path, r.com.Salt(), r.com.Root())
	if err != nil {
		return nil, fmt.Errorf("prove shot at (%d,%d): %w", row, col, err)
	}
	return &ShotProof{Proof: proof, Public: pub}, nil
}

// VerifyResolution checks a shot proof against the published root and the
// shot the player actually took.
func (r *Referee) VerifyResolution(p ShotProof, row, col int, hit bool) error {
	idx := row*r.size + col
	if p.Public.Idx != idx {
		return fmt.Errorf("proof is for cell %d, shot was at cell %d", p.Public.Idx, idx)
	}
	wantHit := uint8(0)
	if hit {
		wantHit = 1
	}
	if p.Public.Hit != wantHit {
		return fmt.Errorf("proof reveals hit=%d, engine reported hit=%d", p.Public.Hit, wantHit)
	}

	ok, err := zk.VerifyShot(zk.VKPath(r.keysDir), p.Proof, p.Public, r.com.Root())
	if err != nil {
		return fmt.Errorf("verify shot at (%d,%d): %w", row, col, err)
	}
	if !ok {
		return fmt.Errorf("invalid proof for shot at (%d,%d)", row, col)
	}
	return nil
}
