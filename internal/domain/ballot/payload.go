package ballot

import (
	"bytes"
	"encoding/json"
	"strconv"

	"award-voting/internal/domain/category"
)

// Field is a single key/value pair of the webhook payload.
type Field struct {
	Key   string
	Value string
}

// Payload is the flat record delivered to the webhook. Field order follows
// category display order, with the resolved address first; MarshalJSON
// preserves that order instead of sorting keys the way a map would.
type Payload []Field

// BuildPayload encodes a complete ballot as the webhook record: key "ip"
// carries the resolved address, then one field per category keyed by its
// one-based ordinal with value "<category title>|<selected alternative>".
func BuildPayload(categories []category.Category, b Ballot, ip string) Payload {
	p := make(Payload, 0, len(categories)+1)
	p = append(p, Field{Key: "ip", Value: ip})
	for i, cat := range categories {
		p = append(p, Field{
			Key:   strconv.Itoa(i + 1),
			Value: cat.Title + "|" + b[cat.ID],
		})
	}
	return p
}

func (p Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
