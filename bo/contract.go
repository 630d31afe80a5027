package bo

import (
	"time"

	bo4e "github.com/voltmesh/bo4e-go"
	"github.com/voltmesh/bo4e-go/com"
	"github.com/voltmesh/bo4e-go/enums"
)

var contractNames = struct {
	contractNumber  bo4e.Name
	contractType    bo4e.Name
	status          bo4e.Name
	division        bo4e.Name
	contractStart   bo4e.Name
	contractEnd     bo4e.Name
	signingDate     bo4e.Name
	validityPeriod  bo4e.Name
	contractPartner bo4e.Name
}{
	contractNumber:  bo4e.Name{German: "vertragsnummer", English: "contractNumber"},
	contractType:    bo4e.Name{German: "vertragsart", English: "contractType"},
	status:          bo4e.Name{German: "status", English: "status"},
	division:        bo4e.Name{German: "sparte", English: "division"},
	contractStart:   bo4e.Name{German: "vertragsbeginn", English: "contractStart"},
	contractEnd:     bo4e.Name{German: "vertragsende", English: "contractEnd"},
	signingDate:     bo4e.Name{German: "unterzeichnungsdatum", English: "signingDate"},
	validityPeriod:  bo4e.Name{German: "gueltigkeitszeitraum", English: "validityPeriod"},
	contractPartner: bo4e.Name{German: "vertragspartner", English: "contractPartner"},
}

// Contract (Vertrag) is an agreement between market partners, e.g. an
// energy supply or network usage contract.
type Contract struct {
	bo4e.Meta

	ContractNumber  *string
	ContractType    *enums.ContractType
	Status          *enums.ContractStatus
	Division        *enums.Division
	ContractStart   *time.Time
	ContractEnd     *time.Time
	SigningDate     *time.Time
	ValidityPeriod  *com.TimePeriod
	ContractPartner *BusinessPartner
}

func (c *Contract) TypeName() bo4e.Name {
	return bo4e.Name{German: "Vertrag", English: "Contract"}
}

func (c *Contract) EncodeFields(e *bo4e.Encoder) {
	e.Str(contractNames.contractNumber, c.ContractNumber)
	bo4e.EncodeEnum(e, contractNames.contractType, c.ContractType)
	bo4e.EncodeEnum(e, contractNames.status, c.Status)
	bo4e.EncodeEnum(e, contractNames.division, c.Division)
	e.Time(contractNames.contractStart, c.ContractStart)
	e.Time(contractNames.contractEnd, c.ContractEnd)
	e.Time(contractNames.signingDate, c.SigningDate)
	bo4e.EncodeStruct(e, contractNames.validityPeriod, c.ValidityPeriod)
	bo4e.EncodeStruct(e, contractNames.contractPartner, c.ContractPartner)
}

func (c *Contract) DecodeField(d *bo4e.Decoder, key string) error {
	switch key {
	case contractNames.contractNumber.German, contractNames.contractNumber.English:
		return d.Str(&c.ContractNumber)
	case contractNames.contractType.German, contractNames.contractType.English:
		return bo4e.ReadEnum(d, enums.ParseContractType, &c.ContractType)
	case contractNames.status.German:
		return bo4e.ReadEnum(d, enums.ParseContractStatus, &c.Status)
	case contractNames.division.German, contractNames.division.English:
		return bo4e.ReadEnum(d, enums.ParseDivision, &c.Division)
	case contractNames.contractStart.German, contractNames.contractStart.English:
		return d.Time(&c.ContractStart)
	case contractNames.contractEnd.German, contractNames.contractEnd.English:
		return d.Time(&c.ContractEnd)
	case contractNames.signingDate.German, contractNames.signingDate.English:
		return d.Time(&c.SigningDate)
	case contractNames.validityPeriod.German, contractNames.validityPeriod.English:
		return bo4e.ReadStruct(d, &c.ValidityPeriod)
	case contractNames.contractPartner.German, contractNames.contractPartner.English:
		return bo4e.ReadStruct(d, &c.ContractPartner)
	}
	return bo4e.ErrUnknownField
}

func init() {
	bo4e.Register(func() bo4e.Object { return new(Contract) })
}
