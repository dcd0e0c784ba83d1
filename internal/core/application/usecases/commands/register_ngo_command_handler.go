package commands

import (
	"context"

	"sharebite/internal/core/domain/model/ngo"
)

// RegisterNgoCommandHandler enrolls an NGO into the directory. New entries
// start unverified; verification is an out-of-band back-office step.
type RegisterNgoCommandHandler struct {
	uowFactory NgoUoWFactory
}

// NewRegisterNgoCommandHandler creates a handler for NGO registration.
func NewRegisterNgoCommandHandler(uowFactory NgoUoWFactory) RegisterNgoCommandHandler {
	return RegisterNgoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the persisted NGO.
func (h RegisterNgoCommandHandler) Handle(ctx context.Context, cmd RegisterNgoCommand) (*ngo.NGO, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newNgo, err := ngo.NewNGO(
		cmd.NgoID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Credential(),
		cmd.Location(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NgoRepository().Add(ctx, newNgo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newNgo, nil
}
