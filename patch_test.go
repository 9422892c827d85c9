package bytekit

import (
	"bytes"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const patchVectors = `
- name: sparse markers
  target: aaXbbXcc
  from: X
  to: Y
  offsets: [2, 5]
  result: aaYbbYcc
- name: overlapping pattern does not re-match replaced bytes
  target: AAAA
  from: AA
  to: BB
  offsets: [0, 2]
  result: BBBB
- name: no occurrence leaves buffer unchanged
  target: deadbeef
  from: XY
  to: ZZ
  offsets: []
  result: deadbeef
- name: match at both ends
  target: XXmidXX
  from: XX
  to: YY
  offsets: [0, 5]
  result: YYmidYY
- name: whole buffer is one match
  target: abab
  from: abab
  to: cdcd
  offsets: [0]
  result: cdcd
`

type patchCase struct {
	Name    string
	Target  string
	From    string
	To      string
	Offsets []int
	Result  string
}

func TestPatchVectors(t *testing.T) {
	var cases []patchCase
	require.NoError(t, yaml.Unmarshal([]byte(patchVectors), &cases))
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			buf := ViewString(tc.Target).Clone()
			defer buf.Free()
			offs := buf.Patch(ViewString(tc.From), ViewString(tc.To))
			if len(tc.Offsets) == 0 {
				assert.Empty(t, offs)
			} else {
				assert.Equal(t, tc.Offsets, offs)
			}
			assert.Equal(t, tc.Result, buf.String())
		})
	}
}

func TestPatchEmptyPattern(t *testing.T) {
	buf := ViewString("anything").Clone()
	defer buf.Free()
	require.Empty(t, buf.Patch(ViewString(""), ViewString("")))
	require.Equal(t, "anything", buf.String())
}

func TestPatchLengthMismatchPanicsAndLogs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	SetLogger(logger)
	defer SetLogger(nil)

	buf := Data([]byte("abc"))
	require.Panics(t, func() { buf.Patch(ViewString("ab"), ViewString("abc")) })
	require.NotEmpty(t, hook.Entries)
	assert.Contains(t, hook.LastEntry().Message, "patch pattern length")
}

func FuzzPatch(f *testing.F) {
	f.Add([]byte("aaXbbXcc"), []byte("X"), byte('Y'))
	f.Add([]byte("AAAA"), []byte("AA"), byte('B'))
	f.Add([]byte("/system/bin/sh"), []byte("/system"), byte(0))
	f.Fuzz(func(t *testing.T, target, from []byte, fill byte) {
		if len(from) == 0 || len(from) > 64 || len(target) > 1<<16 {
			t.Skip()
		}
		to := bytes.Repeat([]byte{fill}, len(from))
		orig := append([]byte(nil), target...)

		buf := View(target).Clone()
		defer buf.Free()
		offs := buf.Patch(View(from), View(to))

		// Replay the non-overlapping left-to-right scan on the untouched
		// original; the offsets must agree exactly.
		var want []int
		base := 0
		for {
			i := bytes.Index(orig[base:], from)
			if i < 0 {
				break
			}
			want = append(want, base+i)
			base += i + len(from)
		}
		require.Equal(t, want, offs)

		// The patched buffer is the original with to stamped at each offset
		// and nothing else altered.
		expect := append([]byte(nil), orig...)
		for _, off := range offs {
			copy(expect[off:], to)
		}
		require.True(t, bytes.Equal(expect, buf.Bytes()))
	})
}

func BenchmarkPatch(b *testing.B) {
	base := bytes.Repeat([]byte("padpadpad|MARK|"), 1024)
	from := ViewString("|MARK|")
	to := ViewString("|gone|")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf := View(base).Clone()
		buf.Patch(from, to)
		buf.Free()
	}
}
