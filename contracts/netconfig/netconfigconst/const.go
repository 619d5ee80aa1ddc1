package netconfigconst

const (
	// RegistrationFeeKey is a config key with the fee charged for social group
	// registration, in GAS notation.
	RegistrationFeeKey = "RegistrationFee"
	// ReputationPriceKey is a config key with the price of a single reputation
	// rating, in GAS notation.
	ReputationPriceKey = "ReputationPrice"
	// OperatorEquityKey is a config key with the percentage of every rating fee
	// retained by the service operator, the rest goes to the rated address.
	OperatorEquityKey = "OperatorEquity"
	// MaxAssociatedIDsKey is a config key with the maximum number of social IDs
	// a single address may be associated with.
	MaxAssociatedIDsKey = "MaxAssociatedIDs"
	// MaxTaggedContractsKey is a config key with the maximum number of tagged
	// contracts per social ID.
	MaxTaggedContractsKey = "MaxTaggedContracts"
	// MaxCommentLengthKey is a config key with the maximum rating comment
	// length in bytes.
	MaxCommentLengthKey = "MaxCommentLength"
	// MaxTagLengthKey is a config key with the maximum rating tag length in
	// bytes.
	MaxTagLengthKey = "MaxTagLength"
	// MaxReputationKey is a config key with the absolute bound of a single
	// reputation score, scores are clamped into [-max, +max].
	MaxReputationKey = "MaxReputation"
	// DelegateMustBeMemberKey is a config key controlling whether a delegate
	// must already be an associated member of the group it is delegated for.
	DelegateMustBeMemberKey = "DelegateMustBeMember"

	// DefaultRegistrationFee is 0.01 GAS.
	DefaultRegistrationFee = 0_0100_0000
	// DefaultReputationPrice is 0.005 GAS.
	DefaultReputationPrice = 0_0050_0000
	// DefaultOperatorEquity is the default operator share of rating fees, %.
	DefaultOperatorEquity = 25
	// DefaultMaxAssociatedIDs limits each address to a single social ID.
	DefaultMaxAssociatedIDs = 1
	// DefaultMaxTaggedContracts limits tagged contracts per social ID.
	DefaultMaxTaggedContracts = 5
	// DefaultMaxCommentLength limits rating comments, bytes.
	DefaultMaxCommentLength = 320
	// DefaultMaxTagLength limits rating tags, bytes.
	DefaultMaxTagLength = 32
	// DefaultMaxReputation bounds a single score to [-2, 2].
	DefaultMaxReputation = 2
	// DefaultDelegateMustBeMember requires delegates to be members.
	DefaultDelegateMustBeMember = 1

	// ErrUnknownKey is returned on attempt to set a configuration value the
	// contract does not know about.
	ErrUnknownKey = "unknown configuration key"
	// ErrInvalidValue is returned on attempt to set an out-of-range
	// configuration value.
	ErrInvalidValue = "invalid configuration value"
)
