package endian

import (
	"encoding/binary"
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, Little())
	require.Equal(t, binary.BigEndian, Big())
	require.Equal(t, Big(), ForFlag(true))
	require.Equal(t, Little(), ForFlag(false))
	require.True(t, IsBig(Big()))
	require.False(t, IsBig(Little()))
}

func TestAppendFloatBits(t *testing.T) {
	v := math.Float64bits(3.530203168)

	for _, engine := range []Engine{Little(), Big()} {
		buf := engine.AppendUint64(nil, v)
		require.Len(t, buf, 8)
		require.Equal(t, v, engine.Uint64(buf))
	}

	le := Little().AppendUint16(nil, 0x0102)
	be := Big().AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x02, 0x01}, le)
	require.Equal(t, []byte{0x01, 0x02}, be)
}

func TestIsNativeLittleEndian(t *testing.T) {
	switch runtime.GOARCH {
	case "amd64", "arm64", "386", "riscv64", "wasm":
		require.True(t, IsNativeLittleEndian())
	case "s390x", "ppc64":
		require.False(t, IsNativeLittleEndian())
	}
}
