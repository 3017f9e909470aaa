package zk

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

const MerkleDepth = 4 // 16 leaves, one per cell of the 4x4 board

// ShotCircuit proves that the hit/miss reported for one shot matches the
// cell committed at the public index. The path directions are derived from
// the public index, so a proof cannot be replayed for a different cell.
type ShotCircuit struct {
	Bit  frontend.Variable              `gnark:",secret"`
	Path [MerkleDepth]frontend.Variable `gnark:",secret"`
	Salt frontend.Variable              `gnark:",secret"`

	Root frontend.Variable `gnark:",public"` // salted commitment root
	Idx  frontend.Variable `gnark:",public"` // row*size + col
	Hit  frontend.Variable `gnark:",public"`
}

func (c *ShotCircuit) Define(api frontend.API) error {
	api.AssertIsBoolean(c.Bit)      // Bit ∈ {0,1}
	api.AssertIsEqual(c.Hit, c.Bit) // reveal only Hit = Bit

	// bit i of Idx says whether the level-i node is a right child
	dir := api.ToBinary(c.Idx, MerkleDepth)

	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	h.Reset()
	h.Write(c.Bit)
	curr := h.Sum()

	// walk Merkle path
	for i := 0; i < MerkleDepth; i++ {
		h.Reset()
		isRight := dir[i]

		left := api.Select(isRight, c.Path[i], curr)
		right := api.Select(isRight, curr, c.Path[i])

		h.Write(left, right)
		curr = h.Sum()
	}

	// salted root binds the commitment
	h.Reset()
	h.Write(c.Salt, curr)
	api.AssertIsEqual(h.Sum(), c.Root)
	return nil
}
