package inmem

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Lemoonautt/Unigestion-PJ/core/user"
)

type userRepository struct {
	mu    sync.RWMutex
	table map[string]*user.User
	order []string
}

func NewUserRepository() user.Repository {
	return &userRepository{table: make(map[string]*user.User)}
}

func (repo *userRepository) query() []user.User {
	users := make([]user.User, 0, len(repo.order))
	for _, id := range repo.order {
		users = append(users, *repo.table[id])
	}
	return users
}

func (repo *userRepository) CheckUsernameUniqueness(username, email string, excludedUsers ...user.User) error {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	excluded := func(usr user.User) bool {
		for _, ex := range excludedUsers {
			if ex.ID == usr.ID {
				return true
			}
		}
		return false
	}
	for _, usr := range repo.query() {
		if excluded(usr) {
			continue
		}
		if username != "" && usr.Username == username {
			return user.ErrUsernameExists
		}
		if email != "" && usr.Email == email {
			return user.ErrEmailExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if usr.ID == "" {
		usr.ID = uuid.New().String()
	}
	repo.table[usr.ID] = &usr
	repo.order = append(repo.order, usr.ID)
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.query(), nil
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if usr, ok := repo.table[id]; ok {
		return *usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByUsername(username string) (user.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, usr := range repo.query() {
		if usr.Username == username {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, usr := range repo.query() {
		if usr.Email == email {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByUsernameOrEmail(username string) (user.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, usr := range repo.query() {
		if (usr.Username == username) || (usr.Email == username) {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) FilterUsers(filter user.QueryFilter) ([]user.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	match := func(usr user.User) bool {
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(usr.Name), s) &&
				!strings.Contains(strings.ToLower(usr.Username), s) &&
				!strings.Contains(strings.ToLower(usr.Email), s) {
				return false
			}
		}
		if filter.IsActive != nil && usr.IsActive != *filter.IsActive {
			return false
		}
		if filter.Roles != nil {
			var found bool
			for _, role := range filter.Roles {
				if usr.RoleStartsWith(role) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}

	users := make([]user.User, 0)
	for _, usr := range repo.query() {
		if match(usr) {
			users = append(users, usr)
		}
	}
	return users, nil
}

func (repo *userRepository) UpdateUser(usr user.User, isActive *bool) (user.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	// only save set fields
	origUsr, ok := repo.table[usr.ID]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if usr.Name != "" {
		origUsr.Name = usr.Name
	}
	if usr.Username != "" {
		origUsr.Username = usr.Username
	}
	if usr.Email != "" {
		origUsr.Email = usr.Email
	}
	if usr.Roles != nil {
		origUsr.Roles = usr.Roles
	}
	if usr.PasswordHash != nil {
		origUsr.PasswordHash = usr.PasswordHash
	}
	if isActive != nil {
		origUsr.IsActive = *isActive
	}
	if !usr.LastLogin.IsZero() {
		origUsr.LastLogin = usr.LastLogin
	}
	if !usr.UpdatedAt.IsZero() {
		origUsr.UpdatedAt = usr.UpdatedAt
	}
	return *origUsr, nil
}

func (repo *userRepository) DeleteUsersByID(ids ...string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, id := range ids {
		if _, ok := repo.table[id]; !ok {
			continue
		}
		delete(repo.table, id)
		for i, oid := range repo.order {
			if oid == id {
				repo.order = append(repo.order[:i], repo.order[i+1:]...)
				break
			}
		}
	}
	return nil
}
