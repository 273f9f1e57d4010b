package document

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sample() Value {
	var point Value
	point.AddMember("x", intValue(1))
	point.AddMember("y", intValue(-2))

	var list Value
	list.PushBack(point)
	var empty Value
	empty.SetObject()
	list.PushBack(empty)

	var name Value
	name.SetString("café \"quoted\"")

	var ok Value
	ok.SetBool(true)

	var ratio Value
	ratio.SetFloat(0.5)

	var big Value
	big.SetUint(1 << 63)

	var root Value
	root.AddMember("name", name)
	root.AddMember("ok", ok)
	root.AddMember("ratio", ratio)
	root.AddMember("big", big)
	root.AddMember("list", list)
	root.AddMember("none", Value{})
	var arr Value
	arr.SetArray()
	root.AddMember("empty", arr)
	return root
}

func intValue(i int64) Value {
	var v Value
	v.SetInt(i)
	return v
}

func TestValue_Setters(t *testing.T) {
	var v Value
	assert.True(t, v.IsNull())
	assert.True(t, v.Empty())

	v.PushBack(intValue(3))
	require.True(t, v.IsArray())
	assert.Equal(t, 1, v.Len())
	i, ok := v.Index(0).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(3), i)
	assert.Nil(t, v.Index(1))

	v.AddMember("k", intValue(4))
	require.True(t, v.IsObject())
	assert.Equal(t, 1, v.Len())
	m, ok := v.Member("k")
	require.True(t, ok)
	u, ok := m.AsUint()
	assert.True(t, ok)
	assert.Equal(t, uint64(4), u)

	v.SetString("s")
	s, ok := v.AsString()
	assert.True(t, ok)
	assert.Equal(t, "s", s)
	assert.Nil(t, v.Members())
}

func TestValue_Equal(t *testing.T) {
	a := sample()
	b := sample()
	assert.True(t, a.Equal(&b))

	var i, u Value
	i.SetInt(5)
	u.SetUint(5)
	assert.True(t, i.Equal(&u))

	b.AddMember("extra", Value{})
	assert.False(t, a.Equal(&b))
}

func TestEncodeJSON(t *testing.T) {
	v := sample()
	assert.Equal(t,
		`{"name":"café \"quoted\"","ok":true,"ratio":0.5,"big":9223372036854775808,"list":[{"x":1,"y":-2},{}],"none":null,"empty":[]}`,
		v.String())

	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, &v, true))
	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "\n  \"name\": ")
}

func TestParseJSON_RoundTrip(t *testing.T) {
	v := sample()
	parsed, err := ParseJSON([]byte(v.String()))
	require.NoError(t, err)
	assert.True(t, v.Equal(&parsed), "got %s", parsed.String())

	keys := make([]string, 0)
	for _, m := range parsed.Members() {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"name", "ok", "ratio", "big", "list", "none", "empty"}, keys)
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := ParseJSON([]byte(`{"a": }`))
	assert.Error(t, err)
}

func TestEncodeYAML(t *testing.T) {
	var root Value
	var list Value
	list.PushBack(intValue(1))
	var empty Value
	empty.SetObject()
	list.PushBack(empty)
	var name Value
	name.SetString("true")
	root.AddMember("name", name)
	root.AddMember("list", list)
	root.AddMember("none", Value{})

	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, &root))
	assert.True(t, strings.HasPrefix(buf.String(), "name: \"true\"\n"))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "true", decoded["name"])
	assert.Equal(t, []any{1, map[string]any{}}, decoded["list"])
	assert.Nil(t, decoded["none"])
	assert.Contains(t, decoded, "none")
}
