package types

import (
	"bytes"
	"encoding/json"
)

// SceneDoc marshals as an ordered key → scene-text object (scenes.json).
// encoding/json sorts map keys, which would put S10 before S2, so the
// document is kept as a slice and marshaled by hand.
type SceneDoc []Scene

func (d SceneDoc) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writePair(&buf, s.Key, s.Text); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RunDoc marshals the consolidated records as an ordered key → record object
// (consolidated_analysis_results.json).
type RunDoc []*SceneRecord

func (d RunDoc) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writePair(&buf, r.Key, r); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writePair(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}
