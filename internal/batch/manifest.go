package batch

import (
	"encoding/json"
	"math"
	"os"
	"strconv"

	"quaternion-go/internal/mathutil"
)

// Float is a float64 that encodes NaN and ±Inf as JSON null. Euler angles of
// gimbal-locked frames come out NaN and must not abort the manifest.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// ManifestEntry describes one rendered frame.
type ManifestEntry struct {
	Frame      int      `json:"frame"`
	Image      string   `json:"image"`
	Quaternion string   `json:"quaternion"`
	Components [4]Float `json:"wijk"`
	EulerDeg   [3]Float `json:"euler_deg"` // roll, pitch, yaw
	AngleDeg   Float    `json:"angle_deg"` // total rotation angle, 2·arg(q)
	Error      string   `json:"error,omitempty"`
}

// NewManifestEntry builds the manifest record for a frame result.
func NewManifestEntry(r Result) ManifestEntry {
	q := r.Orientation
	e := q.ToEulerAngles()
	return ManifestEntry{
		Frame:      r.Frame,
		Image:      r.Image,
		Quaternion: q.String(),
		Components: [4]Float{Float(q.W), Float(q.I), Float(q.J), Float(q.K)},
		EulerDeg:   [3]Float{Float(mathutil.Rad2Deg(e[0])), Float(mathutil.Rad2Deg(e[1])), Float(mathutil.Rad2Deg(e[2]))},
		AngleDeg:   Float(mathutil.Rad2Deg(2 * q.Arg())),
		Error:      r.Error,
	}
}

// WriteManifest writes manifest.json for the given frame results.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = NewManifestEntry(r)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
