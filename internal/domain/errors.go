package domain

import "errors"

var (
	// ErrStartupNotFound is returned when a startup id does not resolve to a record
	ErrStartupNotFound = errors.New("startup not found")

	// ErrUserNotFound is returned when a user id or identity subject does not resolve to a record
	ErrUserNotFound = errors.New("user not found")

	// ErrTaxonomyNotFound is returned when a sector, category or industry does not exist
	ErrTaxonomyNotFound = errors.New("taxonomy entry not found")

	// ErrResourceNotFound is returned when a resource does not exist
	ErrResourceNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller does not own the startup it is changing
	ErrForbidden = errors.New("caller does not own this startup")

	// ErrInvalidAsset is returned for an asset name other than deck or demo
	ErrInvalidAsset = errors.New("invalid asset")

	// ErrInvalidTaxonomyKind is returned for an unknown taxonomy table
	ErrInvalidTaxonomyKind = errors.New("invalid taxonomy kind")

	// ErrPasswordRequired is returned when locking an asset that has no password
	ErrPasswordRequired = errors.New("password required to lock asset")

	// ErrInvalidPassword is returned when a locked asset is opened with the wrong password
	ErrInvalidPassword = errors.New("invalid asset password")

	// ErrAssetHidden is returned when a viewer requests an asset the owner has not published
	ErrAssetHidden = errors.New("asset is not shown")

	// ErrAssetNotSet is returned when a viewer requests an asset that has no file
	ErrAssetNotSet = errors.New("asset has no file")

	// ErrSharedStorageRef is returned when two asset fields of a startup would hold the same storage id
	ErrSharedStorageRef = errors.New("storage reference already used by another field")

	// ErrStorageRefInUse is returned when a storage id is already held by another startup
	ErrStorageRefInUse = errors.New("storage reference held by another startup")

	// ErrDuplicateMetricID is returned when a metric id repeats within a startup
	ErrDuplicateMetricID = errors.New("duplicate metric id")

	// ErrTaxonomyNameTaken is returned when a sector, category or industry name already exists
	ErrTaxonomyNameTaken = errors.New("taxonomy name already exists")

	// ErrUnsupportedMediaType is returned when an upload cannot be routed to any blob backend
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrUnknownStorageRef is returned when a storage id has no matching blob backend
	ErrUnknownStorageRef = errors.New("unknown storage reference")
)
