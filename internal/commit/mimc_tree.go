package commit

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	bnmimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// Leaves is the fixed tree width: one leaf per cell of a 4x4 board.
const Leaves = 16

// --- encode BN254 field elements as 32-byte big-endian ---
func feBytes(x *big.Int) []byte {
	b := x.Bytes()
	if len(b) == 32 {
		return b
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

func bytesToFE(b []byte) *big.Int { return new(big.Int).SetBytes(b) }

// MiMC helpers (off-circuit), consistent with the in-circuit MiMC.
func HashLeafMiMC(bit uint8) *big.Int {
	h := bnmimc.NewMiMC()
	h.Write(feBytes(new(big.Int).SetUint64(uint64(bit))))
	return bytesToFE(h.Sum(nil))
}

func HashNodeMiMC(left, right *big.Int) *big.Int {
	h := bnmimc.NewMiMC()
	h.Write(feBytes(left))
	h.Write(feBytes(right))
	return bytesToFE(h.Sum(nil))
}

// tree is a fixed-size binary Merkle tree stored level-by-level.
// levels[0] holds the leaf hashes, levels[depth] the root.
type tree struct {
	depth  int
	levels [][]*big.Int
}

func buildTree(bits []uint8, size int) (*tree, error) {
	if size&(size-1) != 0 {
		return nil, errors.New("tree size must be a power of two")
	}
	if len(bits) > size {
		return nil, errors.New("too many leaves")
	}

	zeroLeaf := HashLeafMiMC(0)
	levels := make([][]*big.Int, 0)

	l0 := make([]*big.Int, size)
	for i := 0; i < size; i++ {
		if i < len(bits) {
			l0[i] = HashLeafMiMC(bits[i])
		} else {
			l0[i] = new(big.Int).Set(zeroLeaf)
		}
	}
	levels = append(levels, l0)

	n := size
	for n > 1 {
		n2 := n / 2
		up := make([]*big.Int, n2)
		prev := levels[len(levels)-1]
		for i := 0; i < n2; i++ {
			up[i] = HashNodeMiMC(prev[2*i], prev[2*i+1])
		}
		levels = append(levels, up)
		n = n2
	}

	return &tree{depth: len(levels) - 1, levels: levels}, nil
}

func (t *tree) root() *big.Int { return new(big.Int).Set(t.levels[len(t.levels)-1][0]) }

// path returns the sibling hashes for leaf idx, bottom-up. The direction
// at level i is bit i of idx (1 = current node is the right child).
func (t *tree) path(idx int) ([]*big.Int, error) {
	if idx < 0 || idx >= len(t.levels[0]) {
		return nil, errors.New("leaf index out of range")
	}
	path := make([]*big.Int, 0, t.depth)
	cur := idx
	for level := 0; level < t.depth; level++ {
		sib := cur + 1
		if cur%2 == 1 {
			sib = cur - 1
		}
		path = append(path, new(big.Int).Set(t.levels[level][sib]))
		cur /= 2
	}
	return path, nil
}

// BoardCommitment is a salted MiMC Merkle commitment over a board's
// initial ship bits. The published root is MiMC(salt, treeRoot); the salt
// keeps identical boards from producing recognizable roots.
type BoardCommitment struct {
	tree *tree
	salt *big.Int
}

// Commit builds a commitment over bits, padding with zero leaves up to
// Leaves. The salt is drawn from crypto/rand.
func Commit(bits []uint8) (*BoardCommitment, error) {
	for i, b := range bits {
		if b != 0 && b != 1 {
			return nil, fmt.Errorf("leaf %d: non-binary cell value %d", i, b)
		}
	}
	t, err := buildTree(bits, Leaves)
	if err != nil {
		return nil, err
	}

	saltBytes := make([]byte, 32)
	if _, err := rand.Read(saltBytes); err != nil {
		return nil, err
	}
	return &BoardCommitment{tree: t, salt: new(big.Int).SetBytes(saltBytes)}, nil
}

// Root is the salted commitment root, the value shown to the player.
func (c *BoardCommitment) Root() *big.Int {
	return HashNodeMiMC(c.salt, c.tree.root())
}

func (c *BoardCommitment) RootHex() string {
	return fmt.Sprintf("0x%x", c.Root())
}

func (c *BoardCommitment) Salt() *big.Int { return new(big.Int).Set(c.salt) }

// TreeRoot is the unsalted Merkle root.
func (c *BoardCommitment) TreeRoot() *big.Int { return c.tree.root() }

// Path returns the Merkle authentication path for leaf idx.
func (c *BoardCommitment) Path(idx int) ([]*big.Int, error) { return c.tree.path(idx) }

// Depth is the number of levels between a leaf and the tree root.
func (c *BoardCommitment) Depth() int { return c.tree.depth }
