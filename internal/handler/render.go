package handler

import (
	"github.com/deppfellow/lotto-api/internal/errs"
	"github.com/deppfellow/lotto-api/internal/model"
	"github.com/deppfellow/lotto-api/internal/service"
)

// messages are the fixed client-facing texts of one resource.
type messages struct {
	created  string
	updated  string
	deleted  string
	notFound string
}

var (
	userMessages = messages{
		created:  "User created successfully",
		updated:  "User updated successfully",
		deleted:  "User deleted successfully",
		notFound: "User not found",
	}

	lottoDrawMessages = messages{
		created:  "Lotto draw created successfully",
		updated:  "Lotto draw updated successfully",
		deleted:  "Lotto draw deleted successfully",
		notFound: "Lotto draw not found",
	}
)

// render turns an Outcome into a response body or an error for
// GlobalErrorHandler. success is the message sent for KindEmpty.
func (m messages) render(outcome service.Outcome, success string) (any, error) {
	switch outcome.Kind {
	case service.KindError:
		return nil, outcome.Err
	case service.KindNotFound:
		return nil, errs.NewNotFoundError(m.notFound, nil)
	case service.KindEmpty:
		return model.MessageResponse{Message: success}, nil
	}

	if created, ok := outcome.Data.(service.Created); ok {
		return model.CreatedResponse{Message: m.created, ID: created.ID}, nil
	}
	return outcome.Data, nil
}
