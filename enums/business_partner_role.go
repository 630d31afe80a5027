package enums

// BusinessPartnerRole (Geschaeftspartnerrolle) is a role a business
// partner takes in the market.
type BusinessPartnerRole string

const (
	BusinessPartnerRoleSupplier        BusinessPartnerRole = "LIEFERANT"
	BusinessPartnerRoleServiceProvider BusinessPartnerRole = "DIENSTLEISTER"
	BusinessPartnerRoleCustomer        BusinessPartnerRole = "KUNDE"
	BusinessPartnerRoleProspect        BusinessPartnerRole = "INTERESSENT"
	BusinessPartnerRoleMarketPartner   BusinessPartnerRole = "MARKTPARTNER"
	BusinessPartnerRoleGridOperator    BusinessPartnerRole = "NETZBETREIBER"
)

var businessPartnerRoles = tokenSet(
	BusinessPartnerRoleSupplier,
	BusinessPartnerRoleServiceProvider,
	BusinessPartnerRoleCustomer,
	BusinessPartnerRoleProspect,
	BusinessPartnerRoleMarketPartner,
	BusinessPartnerRoleGridOperator,
)

// ParseBusinessPartnerRole validates a wire token against the fixed
// set.
func ParseBusinessPartnerRole(token string) (BusinessPartnerRole, error) {
	return parse("BusinessPartnerRole", businessPartnerRoles, token)
}
