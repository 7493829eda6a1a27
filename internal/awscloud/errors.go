package awscloud

import (
	"errors"

	"github.com/aws/smithy-go"
)

// notFoundCodes are the per-service error codes that mean "the resource
// does not exist". Existence predicates translate these into a clean
// (false, nil) answer instead of an error.
var notFoundCodes = map[string]struct{}{
	"InvalidVpcID.NotFound":         {},
	"InvalidSubnetID.NotFound":      {},
	"InvalidGroup.NotFound":         {},
	"InvalidVolume.NotFound":        {},
	"InvalidInstanceID.NotFound":    {},
	"NoSuchEntity":                  {},
	"ResourceNotFoundException":     {},
	"ResourceNotFound":              {},
	"NotFoundException":             {},
	"InvalidInstanceId":             {},
	"InvocationDoesNotExist":        {},
	"ParameterNotFound":             {},
	"DashboardNotFoundError":        {},
	"InvalidAllocationID.NotFound":  {},
	"InvalidAssociationID.NotFound": {},
}

// isNotFound reports whether err is an AWS API error that means the
// addressed resource is absent.
func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	_, ok := notFoundCodes[apiErr.ErrorCode()]
	return ok
}

// isAlreadyExists reports whether err is an AWS API error that means the
// resource already exists. Create paths treat this as success of a
// concurrent or earlier run, never as a failure to retry.
func isAlreadyExists(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "EntityAlreadyExists", "ResourceExistsException", "InvalidGroup.Duplicate", "DuplicateRecordException":
		return true
	}
	return false
}
