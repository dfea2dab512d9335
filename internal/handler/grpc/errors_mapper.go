package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-feature-serving/internal/app"
	"github.com/MKhiriev/go-feature-serving/internal/service"
	"github.com/MKhiriev/go-feature-serving/internal/store"
	"github.com/MKhiriev/go-feature-serving/internal/validators"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// KindTrailer carries the validation kind of an InvalidArgument response.
const KindTrailer = "x-validation-kind"

var errorCodeMap = map[error]codes.Code{
	service.ErrEmptyJobID:             codes.InvalidArgument,
	service.ErrJobNotFound:            codes.NotFound,
	service.ErrUnqualifiedFeatureName: codes.InvalidArgument,
	store.ErrTransient:                codes.Unavailable,
}

func codeFromError(err error) codes.Code {
	if validators.IsValidationError(err) {
		return codes.InvalidArgument
	}
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codes.Internal
}

// toStatus converts a service error into a gRPC status error. Validation
// errors keep their exact message and put their kind into the trailer.
func toStatus(ctx context.Context, err error) error {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		_ = grpc.SetTrailer(ctx, metadata.Pairs(KindTrailer, vErr.Kind.String()))
		return status.Error(codes.InvalidArgument, vErr.Message)
	}

	code := codeFromError(err)
	switch code {
	case codes.Internal:
		return status.Error(code, app.MsgInternalServerError)
	case codes.Unavailable:
		return status.Error(code, app.MsgStorageUnavailable)
	default:
		return status.Error(code, err.Error())
	}
}
