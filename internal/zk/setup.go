package zk

import (
	"bytes"
	"errors"
	"math/big"
	"os"
	"path/filepath"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// ShotPublic carries the public inputs a verifier checks a proof against.
type ShotPublic struct {
	Root *big.Int `json:"root"`
	Idx  int      `json:"idx"`
	Hit  uint8    `json:"hit"`
}

func vkPath(dir string) string { return filepath.Join(dir, "shot.vk") }
func pkPath(dir string) string { return filepath.Join(dir, "shot.pk") }

// VKPath is where EnsureShotKeys writes the verifying key under dir.
func VKPath(dir string) string { return vkPath(dir) }

// EnsureShotKeys makes sure a usable proving/verifying key pair exists
// under dir, generating one if missing or unparsable.
func EnsureShotKeys(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if vk, pk, err := readKeys(vkPath(dir), pkPath(dir)); err == nil && vk != nil && pk != nil {
		return nil
	}

	var circuit ShotCircuit
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		return err
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return err
	}

	if err := writeVK(vkPath(dir), vk); err != nil {
		return err
	}
	return writePK(pkPath(dir), pk)
}

// ProveShot proves that bit is the committed value at leaf idx under the
// salted root. path is the Merkle authentication path for idx.
func ProveShot(keysDir string, bit uint8, idx int, path []*big.Int, salt, saltedRoot *big.Int) ([]byte, ShotPublic, error) {
	if len(path) != MerkleDepth {
		return nil, ShotPublic{}, errors.New("bad path length")
	}

	var assign ShotCircuit
	assign.Bit = bit
	for i := 0; i < MerkleDepth; i++ {
		assign.Path[i] = path[i]
	}
	assign.Salt = salt
	assign.Root = saltedRoot
	assign.Idx = idx
	assign.Hit = bit

	var circuit ShotCircuit
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		return nil, ShotPublic{}, err
	}
	pk, err := readPK(pkPath(keysDir))
	if err != nil {
		return nil, ShotPublic{}, err
	}

	fullWit, err := frontend.NewWitness(&assign, ecc.BN254.ScalarField())
	if err != nil {
		return nil, ShotPublic{}, err
	}
	proof, err := groth16.Prove(cs, pk, fullWit)
	if err != nil {
		return nil, ShotPublic{}, err
	}

	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, ShotPublic{}, err
	}
	return buf.Bytes(), ShotPublic{Root: new(big.Int).Set(saltedRoot), Idx: idx, Hit: bit}, nil
}

// VerifyShot checks a shot proof against the expected salted root.
func VerifyShot(vkFile string, proofBin []byte, pub ShotPublic, root *big.Int) (bool, error) {
	if pub.Root == nil {
		return false, errors.New("proof payload missing public root")
	}
	if pub.Root.Cmp(root) != 0 {
		return false, errors.New("root mismatch: proof root != commitment root")
	}

	var pubAssign ShotCircuit
	pubAssign.Root = root
	pubAssign.Idx = pub.Idx
	pubAssign.Hit = pub.Hit

	pubWit, err := frontend.NewWitness(&pubAssign, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return false, err
	}

	vk, err := readVK(vkFile)
	if err != nil {
		return false, err
	}
	pr := groth16.NewProof(ecc.BN254)
	if _, err := pr.ReadFrom(bytes.NewReader(proofBin)); err != nil {
		return false, err
	}

	if err := groth16.Verify(pr, vk, pubWit); err != nil {
		return false, err
	}
	return true, nil
}

// --- key IO helpers using io.WriterTo / io.ReaderFrom ---

func writeVK(path string, vk groth16.VerifyingKey) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = vk.WriteTo(f)
	return err
}

func writePK(path string, pk groth16.ProvingKey) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = pk.WriteTo(f)
	return err
}

func readVK(path string) (groth16.VerifyingKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vk := groth16.NewVerifyingKey(ecc.BN254)
	_, err = vk.ReadFrom(f)
	return vk, err
}

func readPK(path string) (groth16.ProvingKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pk := groth16.NewProvingKey(ecc.BN254)
	_, err = pk.ReadFrom(f)
	return pk, err
}

func readKeys(vkFile, pkFile string) (groth16.VerifyingKey, groth16.ProvingKey, error) {
	vk, err := readVK(vkFile)
	if err != nil {
		return nil, nil, err
	}
	pk, err := readPK(pkFile)
	if err != nil {
		return nil, nil, err
	}
	return vk, pk, nil
}
