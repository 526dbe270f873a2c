package metadata

import (
	"encoding/base64"

	"github.com/nmxmxh/wirecall/pkg/json"
)

// MarshalJSON renders the container as a key to value-list object for logs
// and diagnostics. Binary values appear base64-encoded. This is a debug
// view, not the wire format; see pkg/transport for serialization.
func (md *MD) MarshalJSON() ([]byte, error) {
	out := make(map[string][]string, len(md.m))
	for k, vs := range md.m {
		ss := make([]string, len(vs))
		for i, v := range vs {
			if v.IsBinary() {
				ss[i] = base64.RawStdEncoding.EncodeToString(v.Bytes())
			} else {
				ss[i] = v.Text()
			}
		}
		out[k] = ss
	}
	return json.Marshal(out)
}
