package forest

import (
	"encoding/binary"
	"encoding/gob"
	"log/slog"
	"math"
	"os"

	gerrors "github.com/groveml/grove/pkg/errors"
	glog "github.com/groveml/grove/pkg/log"
)

// Model bundles the two records a trained forest needs persisted alongside
// its trees.
type Model struct {
	Options *Options
	Spec    *ProblemSpec
}

// SaveModel writes the bundle to a file with encoding/gob.
//
// Example:
//
//	m := &forest.Model{Options: opts, Spec: spec}
//	err := forest.SaveModel(m, "forest.gob")
func SaveModel(m *Model, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return gerrors.Wrap(err, "SaveModel: create file")
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(m); err != nil {
		return gerrors.Wrap(err, "SaveModel: encode model")
	}
	slog.Debug("model saved",
		slog.String(glog.OperationKey, "save"),
		slog.String("path", filename),
	)
	return nil
}

// LoadModel reads a bundle written by SaveModel.
func LoadModel(m *Model, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return gerrors.Wrap(err, "LoadModel: open file")
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(m); err != nil {
		return gerrors.Wrap(err, "LoadModel: decode model")
	}
	slog.Debug("model loaded",
		slog.String(glog.OperationKey, "load"),
		slog.String("path", filename),
	)
	return nil
}

// GobEncode routes gob encoding through the flat codec so the function
// fields, which gob cannot encode, reduce to presence flags.
func (o *Options) GobEncode() ([]byte, error) {
	buf := make([]float64, o.SerializedSize())
	if err := o.Serialize(buf); err != nil {
		return nil, err
	}
	return floatsToBytes(buf), nil
}

// GobDecode is the inverse of GobEncode. The function fields stay nil.
func (o *Options) GobDecode(data []byte) error {
	buf, err := bytesToFloats(data)
	if err != nil {
		return err
	}
	return o.Deserialize(buf)
}

// GobEncode routes gob encoding through the flat codec, with the same
// lossiness as Serialize for labels outside float64 exactness.
func (p *ProblemSpec) GobEncode() ([]byte, error) {
	buf := make([]float64, p.SerializedSize())
	if err := p.Serialize(buf); err != nil {
		return nil, err
	}
	return floatsToBytes(buf), nil
}

// GobDecode is the inverse of GobEncode.
func (p *ProblemSpec) GobDecode(data []byte) error {
	buf, err := bytesToFloats(data)
	if err != nil {
		return err
	}
	return p.Deserialize(buf)
}

func floatsToBytes(fs []float64) []byte {
	out := make([]byte, 8*len(fs))
	for i, f := range fs {
		binary.BigEndian.PutUint64(out[8*i:], math.Float64bits(f))
	}
	return out
}

func bytesToFloats(data []byte) ([]float64, error) {
	if len(data)%8 != 0 {
		return nil, gerrors.Newf("grove: malformed gob payload: %d bytes", len(data))
	}
	fs := make([]float64, len(data)/8)
	for i := range fs {
		fs[i] = math.Float64frombits(binary.BigEndian.Uint64(data[8*i:]))
	}
	return fs, nil
}
