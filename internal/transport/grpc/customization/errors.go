package customization

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ristorante/customization-service/internal/app/customization/domain"
)

// mapError translates domain sentinel errors into proper gRPC status codes.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	// Not found
	if errors.Is(err, domain.ErrSchemaNotFound) ||
		errors.Is(err, domain.ErrCatalogItemNotFound) ||
		errors.Is(err, spanner.ErrRowNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}

	// Invalid argument (author-time invariants and selections)
	var defErr *domain.SchemaDefinitionError
	if errors.As(err, &defErr) {
		return definitionStatus(defErr)
	}
	var selErr domain.ValidationErrors
	if errors.As(err, &selErr) {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	// Failed precondition (business rules / state)
	switch {
	case errors.Is(err, domain.ErrCatalogItemNotActive),
		errors.Is(err, domain.ErrSchemaAlreadyActive),
		errors.Is(err, domain.ErrSchemaAlreadyInactive),
		errors.Is(err, domain.ErrSchemaItemMismatch):
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}

// definitionStatus attaches the offending field as a BadRequest detail.
func definitionStatus(defErr *domain.SchemaDefinitionError) error {
	st := status.New(codes.InvalidArgument, defErr.Error())
	withDetails, err := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: defErr.Field, Description: defErr.Err.Error()},
		},
	})
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}
