package enums

// ContractType (Vertragsart) classifies the kind of contract.
type ContractType string

const (
	ContractTypeEnergySupply           ContractType = "ENERGIELIEFERVERTRAG"
	ContractTypeNetworkUsage           ContractType = "NETZNUTZUNGSVERTRAG"
	ContractTypeBalancing              ContractType = "BILANZIERUNGSVERTRAG"
	ContractTypeMeteringPointOperation ContractType = "MESSSTELLENBETRIEBSVERTRAG"
	ContractTypeBundle                 ContractType = "BUENDELVERTRAG"
)

var contractTypes = tokenSet(
	ContractTypeEnergySupply,
	ContractTypeNetworkUsage,
	ContractTypeBalancing,
	ContractTypeMeteringPointOperation,
	ContractTypeBundle,
)

// ParseContractType validates a wire token against the fixed set.
func ParseContractType(token string) (ContractType, error) {
	return parse("ContractType", contractTypes, token)
}
