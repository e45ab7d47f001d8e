package classify

// Canonical descriptions shared by compatible and name entries.
const (
	DescRAM       = "Main memory (RAM)"
	DescUART      = "ARM PL011 UART controller"
	DescGPIO      = "ARM PL061 GPIO controller"
	DescRTC       = "ARM PL031 real-time clock (RTC)"
	DescGIC       = "ARM GIC generic interrupt controller"
	DescGICv3     = "ARM GICv3 generic interrupt controller"
	DescGICv2m    = "ARM GICv2m MSI frame"
	DescTimer     = "ARM generic timer"
	DescPCIe      = "PCIe host controller (ECAM)"
	DescVirtIO    = "VirtIO MMIO transport"
	DescFwCfg     = "QEMU firmware configuration interface"
	DescFlash     = "CFI parallel NOR flash"
	DescSMMU      = "ARM SMMUv3 IOMMU"
	DescPowerCtrl = "GPIO power/reset controller"
)

// defaultEntries is ordered: more specific keys precede keys they contain
// (gic-v2m-frame before gic).
var defaultEntries = []Entry{
	{MatchCompatible, "arm,pl011", DescUART},
	{MatchCompatible, "arm,pl031", DescRTC},
	{MatchCompatible, "arm,pl061", DescGPIO},
	{MatchCompatible, "virtio,mmio", DescVirtIO},
	{MatchCompatible, "arm,gic-v2m-frame", DescGICv2m},
	{MatchCompatible, "arm,gic-v3", DescGICv3},
	{MatchCompatible, "gic", DescGIC},
	{MatchCompatible, "arm,armv7-timer", DescTimer},
	{MatchCompatible, "arm,armv8-timer", DescTimer},
	{MatchCompatible, "pci-host-ecam-generic", DescPCIe},
	{MatchCompatible, "qemu,fw-cfg-mmio", DescFwCfg},
	{MatchCompatible, "cfi-flash", DescFlash},
	{MatchCompatible, "arm,smmu-v3", DescSMMU},
	{MatchCompatible, "gpio-poweroff", DescPowerCtrl},

	{MatchName, "memory", DescRAM},
	{MatchName, "pl011", DescUART},
	{MatchName, "pl061", DescGPIO},
	{MatchName, "pl031", DescRTC},
	{MatchName, "intc", DescGIC},
	{MatchName, "v2m", DescGICv2m},
	{MatchName, "timer", DescTimer},
	{MatchName, "pcie", DescPCIe},
	{MatchName, "virtio_mmio", DescVirtIO},
	{MatchName, "fw_cfg", DescFwCfg},
	{MatchName, "flash", DescFlash},
	{MatchName, "smmu", DescSMMU},
}

// DefaultEntries returns a copy of the built-in table for the QEMU virt machine.
func DefaultEntries() []Entry {
	out := make([]Entry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}
