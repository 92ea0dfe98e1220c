package repositoryImp

import (
	"github.com/yashcodes29/Farm-wise/entities"
	"github.com/yashcodes29/Farm-wise/pkg/forum/repository"
)

type disabledRepo struct{}

// NewDisabled is wired when the database could not be opened; every
// operation reports the store as unavailable.
func NewDisabled() repository.ForumRepository { return disabledRepo{} }

func (disabledRepo) List() ([]entities.ForumPost, error) {
	return nil, repository.ErrStoreUnavailable
}

func (disabledRepo) Create(*entities.ForumPost) error {
	return repository.ErrStoreUnavailable
}

func (disabledRepo) AddComment(uint, string, string) (*entities.ForumPost, error) {
	return nil, repository.ErrStoreUnavailable
}

func (disabledRepo) AddReply(uint, string, string, string) (*entities.ForumPost, error) {
	return nil, repository.ErrStoreUnavailable
}

func (disabledRepo) Like(uint) (*entities.ForumPost, error) {
	return nil, repository.ErrStoreUnavailable
}
