package registryconst

const (
	// ErrGroupNotFound is returned when the requested social ID has never been
	// registered.
	ErrGroupNotFound = "group does not exist"
	// ErrNotAssociated is returned when an address is expected to be an
	// associated member of a group but is not.
	ErrNotAssociated = "address is not associated with this group"
	// ErrAlreadyAssociated is returned on attempt to associate an address with
	// a group it already belongs to.
	ErrAlreadyAssociated = "address already associated with this group"
	// ErrAssociationLimit is returned when an address would exceed the
	// configured maximum of associated social IDs.
	ErrAssociationLimit = "associated ID limit reached"
	// ErrNotMemberOrDelegate is returned when a group mutation is requested by
	// an account that is neither an associated member nor the delegate.
	ErrNotMemberOrDelegate = "caller is neither an associated member nor the delegate"

	// ErrDelegateSet is returned on attempt to add a delegate to a group that
	// already has one.
	ErrDelegateSet = "delegate already set"
	// ErrNoDelegate is returned when a group has no delegate.
	ErrNoDelegate = "no delegate set"
	// ErrNotDelegate is returned when the passed address is not the current
	// delegate of the group.
	ErrNotDelegate = "address is not the current delegate"
	// ErrOnlyDelegate is returned when a member removal is requested by an
	// account other than the delegate of a delegated group.
	ErrOnlyDelegate = "only delegate can remove other members"
	// ErrOnlyFounder is returned when a member removal in a group without a
	// delegate is requested by an account other than the group founder.
	ErrOnlyFounder = "only founder can remove other members"
	// ErrDelegateNotMember is returned when the configuration requires
	// delegates to be associated members but the candidate is not.
	ErrDelegateNotMember = "delegate must be an associated member"
	// ErrOnlyCurrentDelegate is returned when delegation change is requested
	// by an account other than the current delegate.
	ErrOnlyCurrentDelegate = "only current delegate can change delegation"

	// ErrTagLimit is returned when a tag batch would exceed the configured
	// maximum of tagged contracts.
	ErrTagLimit = "tagged contract limit reached"
	// ErrTagExists is returned on attempt to tag an already tagged contract.
	ErrTagExists = "contract already tagged"
	// ErrTagNotFound is returned on attempt to remove a tag that is not
	// present.
	ErrTagNotFound = "tag not found"

	// ErrInsufficientBalance is returned when a withdrawal exceeds the
	// available balance.
	ErrInsufficientBalance = "insufficient balance"
	// ErrTransferFailed is returned when an outward GAS transfer could not
	// complete.
	ErrTransferFailed = "failed to transfer GAS, aborting"
)
