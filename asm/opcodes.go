package asm

// Opcode base values and register-nibble encoding, mirroring
// cpu/opcodes.go and cpu/registers.go field-for-field. The assembler does
// not import cpu (spec.md §2: CORE A and CORE B are independent halves
// connected only by the binary encoding they both agree on), so the two
// tables are maintained as duplicates. Any change to one must be mirrored
// in the other.
const (
	opNOP  = 0x0000
	opDI   = 0x0001
	opEI   = 0x0002
	opHALT = 0x0003
	opSTOP = 0x0004
	opDAA  = 0x0005
	opSCF  = 0x0006
	opCCF  = 0x0007
	opSEC  = 0x0008
	opCEC  = 0x0009

	opJPB  = 0x0010
	opJMP  = 0x0020
	opCALL = 0x0040
	opRET  = 0x0050
	opRETI = 0x0060
	opRST  = 0x0070
	opJPS  = 0x0080

	opLDimm32  = 0x1000
	opLDaddr32 = 0x1100
	opLDrptr32 = 0x1200
	opLDQimm16 = 0x1300
	opLDQrptr  = 0x1400
	opLDHimm8  = 0x1500
	opLDHrptr  = 0x1600
	opSTaddr32 = 0x1700
	opSTrptr32 = 0x1800
	opSTQrptr  = 0x1900
	opSTHrptr  = 0x1A00
	opMV       = 0x1B00

	opPUSH = 0x2000
	opPOP  = 0x2100

	opINC = 0x4000
	opDEC = 0x4100
	opADD = 0x4200
	opADC = 0x4300
	opSUB = 0x4400
	opSBC = 0x4500
	opCMP = 0x4600

	opAND = 0x5000
	opOR  = 0x5100
	opXOR = 0x5200
	opNOT = 0x5300

	opSLA = 0x6000
	opSRA = 0x6100
	opSRL = 0x6200
	opRL  = 0x6300
	opRLC = 0x6400
	opRR  = 0x6500
	opRRC = 0x6600

	opBIT  = 0x7000
	opRES  = 0x7100
	opSET  = 0x7200
	opSWAP = 0x7300
)

// regNames mirrors cpu.regNames: view name -> (which, size).
var regNames = map[string]regRef{
	"A": {0, 0}, "AW": {0, 1}, "AH": {0, 2}, "AL": {0, 3},
	"B": {1, 0}, "BW": {1, 1}, "BH": {1, 2}, "BL": {1, 3},
	"C": {2, 0}, "CW": {2, 1}, "CH": {2, 2}, "CL": {2, 3},
	"D": {3, 0}, "DW": {3, 1}, "DH": {3, 2}, "DL": {3, 3},
}

func registerByName(name string) (regRef, bool) {
	r, ok := regNames[name]
	return r, ok
}

// condNibble mirrors cpu.Cond's nibble values.
func condNibble(c condCode) uint8 {
	switch c {
	case condZ:
		return 1
	case condNZ:
		return 2
	case condC:
		return 3
	case condNC:
		return 4
	default:
		return 0
	}
}
