// Package formtype maps the host's form type enumeration to the four
// character record codes used in plugin files and on the console.
package formtype

import (
	"fmt"
	"sync"

	"github.com/zond/consoleutil"
)

// FormType is the host's enumeration of form categories.
type FormType uint8

const (
	NONE FormType = iota
	TES4
	GRUP
	GMST
	KYWD
	LCRT
	AACT
	TRNS
	CMPO
	TXST
	MICN
	GLOB
	DMGT
	CLAS
	FACT
	HDPT
	EYES
	RACE
	SOUN
	ASPC
	SKIL
	MGEF
	SCPT
	LTEX
	ENCH
	SPEL
	SCRL
	ACTI
	TACT
	ARMO
	BOOK
	CONT
	DOOR
	INGR
	LIGH
	MISC
	STAT
	SCOL
	MSTT
	GRAS
	TREE
	FLOR
	FURN
	WEAP
	AMMO
	NPC_
	LVLN
	KEYM
	ALCH
	IDLM
	NOTE
	PROJ
	HAZD
	BNDS
	SLGM
	TERM
	LVLI
	WTHR
	CLMT
	SPGD
	RFCT
	REGN
	NAVI
	CELL
	REFR
	ACHR
	PMIS
	PARW
	PGRE
	PBEA
	PFLA
	PCON
	PBAR
	PHZD
	WRLD
	LAND
	NAVM
	TLOD
	DIAL
	INFO
	QUST
	IDLE
	PACK
	CSTY
	LSCR
	LVSP
	ANIO
	WATR
	EFSH
	TOFT
	EXPL
	DEBR
	IMGS
	IMAD
	FLST
	PERK
	BPTD
	ADDN
	AVIF
	CAMS
	CPTH
	VTYP
	MATT
	IPCT
	IPDS
	ARMA
	ECZN
	LCTN
	MESG
	RGDL
	DOBJ
	DFOB
	LGTM
	MUSC
	FSTP
	FSTS
	SMBN
	SMQN
	SMEN
	DLBR
	MUST
	DLVW
	WOOP
	SHOU
	EQUP
	RELA
	SCEN
	ASTP
	OTFT
	ARTO
	MATO
	MOVT
	SNDR
	DUAL
	SNCT
	SOPM
	COLL
	CLFM
	REVB
	PKIN
	RFGP
	AMDL
	LAYR
	COBJ
	OMOD
	MSWP
	ZOOM
	INNR
	KSSM
	AECH
	SCCO
	AORU
	SCSN
	STAG
	NOCM
	LENS
	LSPR
	GDRY
	OVIS

	// Total is the number of form types the host defines.
	Total = int(OVIS) + 1
)

// Seed pairs a record code with its enumerant.
type Seed struct {
	Code string
	Type FormType
}

// Seeds lists every form type in enumeration order.
var Seeds = []Seed{
	{"NONE", NONE},
	{"TES4", TES4},
	{"GRUP", GRUP},
	{"GMST", GMST},
	{"KYWD", KYWD},
	{"LCRT", LCRT},
	{"AACT", AACT},
	{"TRNS", TRNS},
	{"CMPO", CMPO},
	{"TXST", TXST},
	{"MICN", MICN},
	{"GLOB", GLOB},
	{"DMGT", DMGT},
	{"CLAS", CLAS},
	{"FACT", FACT},
	{"HDPT", HDPT},
	{"EYES", EYES},
	{"RACE", RACE},
	{"SOUN", SOUN},
	{"ASPC", ASPC},
	{"SKIL", SKIL},
	{"MGEF", MGEF},
	{"SCPT", SCPT},
	{"LTEX", LTEX},
	{"ENCH", ENCH},
	{"SPEL", SPEL},
	{"SCRL", SCRL},
	{"ACTI", ACTI},
	{"TACT", TACT},
	{"ARMO", ARMO},
	{"BOOK", BOOK},
	{"CONT", CONT},
	{"DOOR", DOOR},
	{"INGR", INGR},
	{"LIGH", LIGH},
	{"MISC", MISC},
	{"STAT", STAT},
	{"SCOL", SCOL},
	{"MSTT", MSTT},
	{"GRAS", GRAS},
	{"TREE", TREE},
	{"FLOR", FLOR},
	{"FURN", FURN},
	{"WEAP", WEAP},
	{"AMMO", AMMO},
	{"NPC_", NPC_},
	{"LVLN", LVLN},
	{"KEYM", KEYM},
	{"ALCH", ALCH},
	{"IDLM", IDLM},
	{"NOTE", NOTE},
	{"PROJ", PROJ},
	{"HAZD", HAZD},
	{"BNDS", BNDS},
	{"SLGM", SLGM},
	{"TERM", TERM},
	{"LVLI", LVLI},
	{"WTHR", WTHR},
	{"CLMT", CLMT},
	{"SPGD", SPGD},
	{"RFCT", RFCT},
	{"REGN", REGN},
	{"NAVI", NAVI},
	{"CELL", CELL},
	{"REFR", REFR},
	{"ACHR", ACHR},
	{"PMIS", PMIS},
	{"PARW", PARW},
	{"PGRE", PGRE},
	{"PBEA", PBEA},
	{"PFLA", PFLA},
	{"PCON", PCON},
	{"PBAR", PBAR},
	{"PHZD", PHZD},
	{"WRLD", WRLD},
	{"LAND", LAND},
	{"NAVM", NAVM},
	{"TLOD", TLOD},
	{"DIAL", DIAL},
	{"INFO", INFO},
	{"QUST", QUST},
	{"IDLE", IDLE},
	{"PACK", PACK},
	{"CSTY", CSTY},
	{"LSCR", LSCR},
	{"LVSP", LVSP},
	{"ANIO", ANIO},
	{"WATR", WATR},
	{"EFSH", EFSH},
	{"TOFT", TOFT},
	{"EXPL", EXPL},
	{"DEBR", DEBR},
	{"IMGS", IMGS},
	{"IMAD", IMAD},
	{"FLST", FLST},
	{"PERK", PERK},
	{"BPTD", BPTD},
	{"ADDN", ADDN},
	{"AVIF", AVIF},
	{"CAMS", CAMS},
	{"CPTH", CPTH},
	{"VTYP", VTYP},
	{"MATT", MATT},
	{"IPCT", IPCT},
	{"IPDS", IPDS},
	{"ARMA", ARMA},
	{"ECZN", ECZN},
	{"LCTN", LCTN},
	{"MESG", MESG},
	{"RGDL", RGDL},
	{"DOBJ", DOBJ},
	{"DFOB", DFOB},
	{"LGTM", LGTM},
	{"MUSC", MUSC},
	{"FSTP", FSTP},
	{"FSTS", FSTS},
	{"SMBN", SMBN},
	{"SMQN", SMQN},
	{"SMEN", SMEN},
	{"DLBR", DLBR},
	{"MUST", MUST},
	{"DLVW", DLVW},
	{"WOOP", WOOP},
	{"SHOU", SHOU},
	{"EQUP", EQUP},
	{"RELA", RELA},
	{"SCEN", SCEN},
	{"ASTP", ASTP},
	{"OTFT", OTFT},
	{"ARTO", ARTO},
	{"MATO", MATO},
	{"MOVT", MOVT},
	{"SNDR", SNDR},
	{"DUAL", DUAL},
	{"SNCT", SNCT},
	{"SOPM", SOPM},
	{"COLL", COLL},
	{"CLFM", CLFM},
	{"REVB", REVB},
	{"PKIN", PKIN},
	{"RFGP", RFGP},
	{"AMDL", AMDL},
	{"LAYR", LAYR},
	{"COBJ", COBJ},
	{"OMOD", OMOD},
	{"MSWP", MSWP},
	{"ZOOM", ZOOM},
	{"INNR", INNR},
	{"KSSM", KSSM},
	{"AECH", AECH},
	{"SCCO", SCCO},
	{"AORU", AORU},
	{"SCSN", SCSN},
	{"STAG", STAG},
	{"NOCM", NOCM},
	{"LENS", LENS},
	{"LSPR", LSPR},
	{"GDRY", GDRY},
	{"OVIS", OVIS},
}

// NameTable is an immutable bidirectional map between record codes and
// form types.
type NameTable struct {
	byCode map[string]FormType
	byType map[FormType]string
}

var (
	table     *NameTable
	tableOnce sync.Once
)

// Table returns the process wide table, building it on first use.
func Table() *NameTable {
	tableOnce.Do(func() {
		table = Build(Seeds)
	})
	return table
}

// Build constructs a table from seeds. A seed list that doesn't cover
// exactly Total distinct form types means this build is out of sync with
// the host's enumeration, and is fatal.
func Build(seeds []Seed) *NameTable {
	if len(seeds) != Total {
		consoleutil.Fail("form type table has %d entries, host defines %d", len(seeds), Total)
	}
	t := &NameTable{
		byCode: make(map[string]FormType, len(seeds)),
		byType: make(map[FormType]string, len(seeds)),
	}
	for _, seed := range seeds {
		if len(seed.Code) != 4 {
			consoleutil.Fail("form type code %q is not 4 characters", seed.Code)
		}
		t.byCode[seed.Code] = seed.Type
		t.byType[seed.Type] = seed.Code
	}
	if len(t.byCode) != Total || len(t.byType) != Total {
		consoleutil.Fail("form type table is not a bijection (%d codes, %d types, want %d)", len(t.byCode), len(t.byType), Total)
	}
	return t
}

// Find returns the form type with the given code. Callers must validate
// that code is 4 characters long.
func (t *NameTable) Find(code string) (FormType, bool) {
	if len(code) != 4 {
		panic(fmt.Sprintf("formtype: code %q is not 4 characters", code))
	}
	ft, found := t.byCode[code]
	return ft, found
}

// Code returns the record code of ft.
func (t *NameTable) Code(ft FormType) (string, bool) {
	code, found := t.byType[ft]
	return code, found
}

// Len returns the number of entries.
func (t *NameTable) Len() int {
	return len(t.byCode)
}

func (f FormType) String() string {
	if code, found := Table().Code(f); found {
		return code
	}
	return fmt.Sprintf("FormType(%d)", uint8(f))
}
