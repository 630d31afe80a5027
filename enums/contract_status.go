package enums

// ContractStatus (Vertragsstatus) is the lifecycle state of a
// contract.
type ContractStatus string

const (
	ContractStatusInProgress  ContractStatus = "IN_ARBEIT"
	ContractStatusTransmitted ContractStatus = "UEBERMITTELT"
	ContractStatusAccepted    ContractStatus = "ANGENOMMEN"
	ContractStatusActive      ContractStatus = "AKTIV"
	ContractStatusRejected    ContractStatus = "ABGELEHNT"
	ContractStatusRevoked     ContractStatus = "WIDERRUFEN"
	ContractStatusCancelled   ContractStatus = "STORNIERT"
	ContractStatusTerminated  ContractStatus = "GEKUENDIGT"
	ContractStatusEnded       ContractStatus = "BEENDET"
)

var contractStatuses = tokenSet(
	ContractStatusInProgress,
	ContractStatusTransmitted,
	ContractStatusAccepted,
	ContractStatusActive,
	ContractStatusRejected,
	ContractStatusRevoked,
	ContractStatusCancelled,
	ContractStatusTerminated,
	ContractStatusEnded,
)

// ParseContractStatus validates a wire token against the fixed set.
func ParseContractStatus(token string) (ContractStatus, error) {
	return parse("ContractStatus", contractStatuses, token)
}
