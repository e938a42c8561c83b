package asm

import "strings"

// KeywordTag identifies a resolved keyword regardless of which spelling
// the source used (spec.md §4.3: "alternate spellings ... map to the
// same tag").
type KeywordTag int

const (
	KwNone KeywordTag = iota

	// Directives
	KwDB
	KwDW
	KwDL
	KwDS
	KwDF
	KwDef
	KwMacro
	KwEndm
	KwShift
	KwRepeat
	KwEndr
	KwIf
	KwElif
	KwElse
	KwEndc
	KwInclude
	KwIncbin
	KwAssert
	KwOrg
	KwRom
	KwRam

	// Instructions — isInstructionTag relies on these staying contiguous
	// from KwNOP through KwSWAP.
	KwNOP
	KwDI
	KwEI
	KwHALT
	KwSTOP
	KwDAA
	KwSCF
	KwCCF
	KwSEC
	KwCEC
	KwLD
	KwLDQ
	KwLDH
	KwST
	KwSTQ
	KwSTH
	KwMV
	KwPUSH
	KwPOP
	KwJMP
	KwJPB
	KwCALL
	KwRET
	KwRETI
	KwRST
	KwJPS
	KwINC
	KwDEC
	KwADD
	KwADC
	KwSUB
	KwSBC
	KwCMP
	KwAND
	KwOR
	KwXOR
	KwNOT
	KwSLA
	KwSRA
	KwSRL
	KwRL
	KwRLC
	KwRR
	KwRRC
	KwBIT
	KwRES
	KwSET
	KwSWAP
)

// keywordEntry mirrors spec.md §4.3's "{canonical name, tag, expected
// parameter count}". Arity is only meaningful for instruction tags; -1
// marks directives, which the parser handles with bespoke logic.
type keywordEntry struct {
	Canonical string
	Tag       KeywordTag
	Arity     int
}

var keywordTable = map[string]keywordEntry{
	"DB": {"DB", KwDB, -1}, "BYTE": {"DB", KwDB, -1},
	"DW": {"DW", KwDW, -1}, "DL": {"DL", KwDL, -1},
	"DS": {"DS", KwDS, -1}, "DF": {"DF", KwDF, -1},
	"DEF": {"DEF", KwDef, -1},
	"MACRO": {"MACRO", KwMacro, -1}, "ENDM": {"ENDM", KwEndm, -1},
	"SHIFT": {"SHIFT", KwShift, -1},
	"REPEAT": {"REPEAT", KwRepeat, -1}, "REPT": {"REPEAT", KwRepeat, -1},
	"ENDR": {"ENDR", KwEndr, -1},
	"IF":   {"IF", KwIf, -1},
	"ELIF": {"ELIF", KwElif, -1}, "ELSEIF": {"ELIF", KwElif, -1},
	"ELSE": {"ELSE", KwElse, -1},
	"ENDC": {"ENDC", KwEndc, -1}, "ENDIF": {"ENDC", KwEndc, -1},
	"INCLUDE": {"INCLUDE", KwInclude, -1},
	"INCBIN":  {"INCBIN", KwIncbin, -1},
	"ASSERT":  {"ASSERT", KwAssert, -1},
	"ORG":     {"ORG", KwOrg, -1},
	"ROM":     {"ROM", KwRom, -1}, "RAM": {"RAM", KwRam, -1},

	"NOP": {"NOP", KwNOP, 0}, "DI": {"DI", KwDI, 0}, "EI": {"EI", KwEI, 0},
	"HALT": {"HALT", KwHALT, 0}, "STOP": {"STOP", KwSTOP, 0},
	"DAA": {"DAA", KwDAA, 0}, "SCF": {"SCF", KwSCF, 0}, "CCF": {"CCF", KwCCF, 0},
	"SEC": {"SEC", KwSEC, 1}, "CEC": {"CEC", KwCEC, 0},

	"LD": {"LD", KwLD, 2}, "LDQ": {"LDQ", KwLDQ, 2}, "LDH": {"LDH", KwLDH, 2},
	"ST": {"ST", KwST, 2}, "STQ": {"STQ", KwSTQ, 2}, "STH": {"STH", KwSTH, 2},
	"MV": {"MV", KwMV, 2},

	"PUSH": {"PUSH", KwPUSH, 1}, "POP": {"POP", KwPOP, 1},

	"JMP": {"JMP", KwJMP, 1}, "JP": {"JMP", KwJMP, 1},
	"JPB": {"JPB", KwJPB, 1},
	"CALL": {"CALL", KwCALL, 1},
	"RET": {"RET", KwRET, 0}, "RETI": {"RETI", KwRETI, 0},
	"RST": {"RST", KwRST, 1}, "JPS": {"JPS", KwJPS, 0},

	"INC": {"INC", KwINC, 1}, "DEC": {"DEC", KwDEC, 1},
	"ADD": {"ADD", KwADD, 2}, "ADC": {"ADC", KwADC, 2},
	"SUB": {"SUB", KwSUB, 2}, "SBC": {"SBC", KwSBC, 2}, "CMP": {"CMP", KwCMP, 2},

	"AND": {"AND", KwAND, 2}, "OR": {"OR", KwOR, 2}, "XOR": {"XOR", KwXOR, 2},
	"NOT": {"NOT", KwNOT, 1}, "CPL": {"NOT", KwNOT, 1},

	"SLA": {"SLA", KwSLA, 1}, "SRA": {"SRA", KwSRA, 1}, "SRL": {"SRL", KwSRL, 1},
	"RL": {"RL", KwRL, 1}, "RLC": {"RLC", KwRLC, 1},
	"RR": {"RR", KwRR, 1}, "RRC": {"RRC", KwRRC, 1},

	"BIT": {"BIT", KwBIT, 2}, "RES": {"RES", KwRES, 2}, "SET": {"SET", KwSET, 2},
	"SWAP": {"SWAP", KwSWAP, 1},
}

// lookupKeyword folds name to upper-case and resolves it through the
// flat keyword table (spec.md §4.3).
func lookupKeyword(name string) (keywordEntry, bool) {
	e, ok := keywordTable[strings.ToUpper(name)]
	return e, ok
}

func isInstructionTag(tag KeywordTag) bool {
	return tag >= KwNOP && tag <= KwSWAP
}
