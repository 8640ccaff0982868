package usecase_test

import (
	"sort"

	"github.com/sagarkwankhade/CRM-Version-One/internal/domain"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Determinísticos y sin
// concurrencia: suficientes para ejercitar la lógica de los casos de uso.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) add(u *entity.User) *entity.User {
	u.Email = entity.NormalizeEmail(u.Email)
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, e := range f.users {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.users[id], nil }

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) SetBlocked(id string, blocked bool) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Blocked = blocked
	return nil
}

func (f *fakeUserRepo) ListByRole(role string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) FindByIDs(ids []string) ([]*entity.User, error) {
	var out []*entity.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) CountByRole(role string) (int, error) {
	n := 0
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountActiveByRole(role string) (int, error) {
	n := 0
	for _, u := range f.users {
		if u.Role == role && !u.Blocked {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountActive() (int, error) {
	n := 0
	for _, u := range f.users {
		if !u.Blocked {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountByIDs(ids []string) (int, error) {
	n := 0
	for _, id := range ids {
		if _, ok := f.users[id]; ok {
			n++
		}
	}
	return n, nil
}

type fakeTaskRepo struct {
	tasks map[string]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entity.Task{}}
}

func (f *fakeTaskRepo) Create(t *entity.Task) error {
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) GetByID(id string) (*entity.Task, error) { return f.tasks[id], nil }

func (f *fakeTaskRepo) Update(t *entity.Task) error {
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Delete(id string) error {
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskRepo) List(limit, offset int) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range f.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTaskRepo) ListByAssignee(accountID string, limit, offset int) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range f.tasks {
		if t.AssignedTo == accountID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeNotificationRepo struct {
	notifs map[string]*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifs: map[string]*entity.Notification{}}
}

func (f *fakeNotificationRepo) Create(n *entity.Notification) error {
	f.notifs[n.ID] = n
	return nil
}

func (f *fakeNotificationRepo) GetByID(id string) (*entity.Notification, error) {
	return f.notifs[id], nil
}

func (f *fakeNotificationRepo) Update(n *entity.Notification) error {
	f.notifs[n.ID] = n
	return nil
}

func (f *fakeNotificationRepo) Delete(id string) error {
	delete(f.notifs, id)
	return nil
}

func (f *fakeNotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range f.notifs {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeNotificationRepo) Count() (int, error) { return len(f.notifs), nil }

type fakeLeadRepo struct {
	leads map[string]*entity.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: map[string]*entity.Lead{}}
}

func (f *fakeLeadRepo) Create(l *entity.Lead) error {
	f.leads[l.ID] = l
	return nil
}

func (f *fakeLeadRepo) GetByID(id string) (*entity.Lead, error) { return f.leads[id], nil }

func (f *fakeLeadRepo) Update(l *entity.Lead) error {
	f.leads[l.ID] = l
	return nil
}

func (f *fakeLeadRepo) SetBlocked(id string, blocked bool) error {
	l, ok := f.leads[id]
	if !ok {
		return domain.ErrNotFound
	}
	l.Blocked = blocked
	return nil
}

func (f *fakeLeadRepo) List(limit, offset int) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range f.leads {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLeadRepo) Count() (int, error) { return len(f.leads), nil }

// Actores de prueba.

func testAdmin() *entity.User {
	return &entity.User{ID: "a1", Name: "Admin", Role: entity.RoleAdmin}
}

func testVendor(id string) *entity.User {
	return &entity.User{ID: id, Name: "Vendor " + id, Role: entity.RoleVendor}
}

func testEmployee(id, vendorID string) *entity.User {
	return &entity.User{ID: id, Name: "Emp " + id, Role: entity.RoleEmployee, VendorID: vendorID}
}
