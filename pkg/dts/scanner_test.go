package dts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skyos/hwinv/pkg/log"
	"github.com/skyos/hwinv/pkg/log/mocks"
)

const uartDTS = `
/ {
	pl011@9000000 {
		clock-names = "uartclk\0apb_pclk";
		interrupts = <0x00 0x01 0x04>;
		reg = <0x00 0x9000000 0x00 0x1000>;
		compatible = "arm,pl011\0arm,primecell";
	};
};
`

func loadVirt(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "docs", "labs", "qemu-virt-devicetree.dts"))
	require.NoError(t, err)
	return string(data)
}

func TestScanMultiLineNode(t *testing.T) {
	nodes := Scan(uartDTS)
	require.Len(t, nodes, 1)

	n := nodes[0]
	assert.Equal(t, "pl011", n.Name)
	assert.Equal(t, uint64(0x9000000), n.UnitAddress)
	assert.Equal(t, 3, n.Line)
	assert.True(t, n.HasCompatible)
	assert.Equal(t, "arm,pl011", n.Compatible)
	assert.Equal(t, []string{"0x00", "0x9000000", "0x00", "0x1000"}, n.RegCells)
	assert.Equal(t, []string{"0x00", "0x01", "0x04"}, n.InterruptCells)
}

func TestScanSingleLineNode(t *testing.T) {
	nodes := Scan(`pl011@9000000 { compatible = "arm,pl011"; reg = <0x09000000 0x00001000>; interrupts = <0x0 0x01 0x04>; };`)
	require.Len(t, nodes, 1)

	n := nodes[0]
	assert.Equal(t, "pl011", n.Name)
	assert.Equal(t, "arm,pl011", n.Compatible)
	assert.Equal(t, []string{"0x09000000", "0x00001000"}, n.RegCells)
	assert.Equal(t, []string{"0x0", "0x01", "0x04"}, n.InterruptCells)
}

func TestScanDropsContainerNodes(t *testing.T) {
	nodes := Scan(`
platform@c000000 {
	compatible = "qemu,platform";
	#address-cells = <0x01>;
};
`)
	assert.Empty(t, nodes)
}

func TestScanKeepsNodeWithUndecodableReg(t *testing.T) {
	nodes := Scan(`
cpu@0 {
	reg = <0x00>;
};
pl031@9010000 {
	reg = <0x9010000 0x1000>;
};
`)
	require.Len(t, nodes, 2)
	assert.Equal(t, []string{"0x00"}, nodes[0].RegCells)
	assert.Equal(t, "pl031", nodes[1].Name)
}

func TestScanNestedNodeDiscardsOuter(t *testing.T) {
	nodes := Scan(`
intc@8000000 {
	reg = <0x8000000 0x10000>;
	compatible = "arm,cortex-a15-gic";

	v2m@8020000 {
		reg = <0x8020000 0x1000>;
	};
};
`)
	require.Len(t, nodes, 1)
	assert.Equal(t, "v2m", nodes[0].Name)
	assert.False(t, nodes[0].HasCompatible, "outer compatible must not leak into the inner node")
}

func TestScanIgnoresPropertiesOutsideNodes(t *testing.T) {
	nodes := Scan(`
reg = <0x1000 0x100>;
timer {
	interrupts = <0x01 0x0d 0x104>;
};
};
`)
	assert.Empty(t, nodes)
}

func TestScanHeaderVariants(t *testing.T) {
	nodes := Scan(`
uart0: pl011@9000000 {
	reg = <0x9000000 0x1000>;
};
fw-cfg@9020000 {
	reg = <0x9020000 0x18>;
};
virtio_mmio@A000000{
	reg = <0xa000000 0x200>;
};
`)
	require.Len(t, nodes, 2, "hyphenated node names are not headers")
	assert.Equal(t, "pl011", nodes[0].Name)
	assert.Equal(t, "virtio_mmio", nodes[1].Name)
	assert.Equal(t, uint64(0xa000000), nodes[1].UnitAddress)
}

func TestScanHyphenatedNameIsNotHeader(t *testing.T) {
	nodes := Scan("fw-cfg@9020000 {\n\treg = <0x9020000 0x18>;\n};\n")
	assert.Empty(t, nodes)
}

func TestScanHeaderInsideQuotedValue(t *testing.T) {
	nodes := Scan(`
chosen {
	bootargs = "console=x@1 {";
	reg = <0x1 0x2>;
};
`)
	assert.Empty(t, nodes)

	nodes = Scan(`
pl011@9000000 {
	label = "uart@1 {";
	reg = <0x9000000 0x1000>;
};
`)
	require.Len(t, nodes, 1)
	assert.Equal(t, "pl011", nodes[0].Name)
	assert.Equal(t, uint64(0x9000000), nodes[0].UnitAddress)
}

func TestScanMatchesPropertyNamesExactly(t *testing.T) {
	nodes := Scan(`
dev@1000 {
	virtual-reg = <0x1000>;
	interrupts-extended = <0x8002 0x00 0x05 0x04>;
};
`)
	assert.Empty(t, nodes)
}

func TestScanLastPropertyWins(t *testing.T) {
	nodes := Scan(`
dev@1000 {
	reg = <0x1000 0x100>;
	reg = <0x2000 0x200>;
};
`)
	require.Len(t, nodes, 1)
	assert.Equal(t, []string{"0x2000", "0x200"}, nodes[0].RegCells)
}

func TestScanArbitraryText(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"};};};",
		"@@@ { { {",
		"foo@ {",
		"foo@zz {",
		"foo@ffffffffffffffffffff {\n reg = <0x1 0x2>;\n};",
		"\"unterminated { ; };",
		"pl011@9000000 {\n reg = <0x1 0x2>;\n",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Scan(in) }, "input %q", in)
	}
	assert.Empty(t, Scan("pl011@9000000 {\n reg = <0x1 0x2>;\n"), "unterminated node is never yielded")
}

func TestNodesRestartable(t *testing.T) {
	seq := NewScanner(nil).Nodes(loadVirt(t))

	var first, second []Node
	for n := range seq {
		first = append(first, n)
	}
	for n := range seq {
		second = append(second, n)
	}
	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestNodesEarlyBreak(t *testing.T) {
	count := 0
	for range NewScanner(nil).Nodes(loadVirt(t)) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestScanVirtDump(t *testing.T) {
	nodes := Scan(loadVirt(t))

	var names []string
	for _, n := range nodes {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{
		"memory", "virtio_mmio", "pl061", "pcie", "pl031", "pl011", "v2m", "flash", "cpu",
	}, names)
}

func TestScannerTracesDecisions(t *testing.T) {
	trace := mocks.NewMockLogger(t)

	kindIs := func(k log.Kind, node string) any {
		return mock.MatchedBy(func(e log.Event) bool { return e.Kind == k && e.Node == node })
	}
	trace.EXPECT().Log(kindIs(log.KindNodeOpened, "intc")).Return().Once()
	trace.EXPECT().Log(kindIs(log.KindNodeDiscarded, "intc")).Return().Once()
	trace.EXPECT().Log(kindIs(log.KindNodeOpened, "v2m")).Return().Once()
	trace.EXPECT().Log(kindIs(log.KindNodeClosed, "v2m")).Return().Once()
	trace.EXPECT().Log(kindIs(log.KindNodeOpened, "platform_bus")).Return().Once()
	trace.EXPECT().Log(kindIs(log.KindNodeDropped, "platform_bus")).Return().Once()

	nodes := NewScanner(trace).Scan(`
intc@8000000 {
	v2m@8020000 {
		reg = <0x8020000 0x1000>;
	};
};
platform_bus@c000000 {
	compatible = "qemu,platform";
};
`)
	require.Len(t, nodes, 1)
}

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"\tpl011@9000000 {\n", []string{"pl011@9000000 {"}},
		{"a@1 { reg = <0x1 0x2>; };", []string{"a@1 {", "reg = <0x1 0x2>;", "};"}},
		{`compatible = "a;b{c";`, []string{`compatible = "a;b{c";`}},
		{`label = "say \"hi;\"";`, []string{`label = "say \"hi;\"";`}},
		{"   \r\n", nil},
		{"ranges", []string{"ranges"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitStatements(tt.in), "input %q", tt.in)
	}
}
