package application

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"projecthub/internal/domain"
	"projecthub/internal/domain/entities"
	"projecthub/internal/infrastructure/memory"
	"projecthub/internal/ports/input"
)

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (stubHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type services struct {
	store     *memory.Store
	reg       *RegistrationService
	projects  *ProjectService
	interests *ProjectInterestService
	events    *EventService
	now       time.Time
}

func newServices(t *testing.T) *services {
	t.Helper()
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	tick := now.Add(-time.Hour)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick = tick.Add(time.Minute)
		return tick
	}
	store := memory.NewStore(memory.WithClock(clock))
	entrepreneurs := memory.NewEntrepreneurRepository(store)
	groups := memory.NewStudentGroupRepository(store)
	projects := memory.NewProjectRepository(store)
	interests := memory.NewProjectInterestRepository(store)
	resolver := NewResolver(entrepreneurs, groups, projects, interests)
	return &services{
		store:     store,
		reg:       NewRegistrationService(memory.NewAccountRepository(store), entrepreneurs, groups, stubHasher{}),
		projects:  NewProjectService(projects, entrepreneurs, resolver),
		interests: NewProjectInterestService(interests, projects, groups, resolver),
		events:    NewEventService(memory.NewEventRepository(store), func() time.Time { return now }),
		now:       now,
	}
}

func (s *services) entrepreneur(t *testing.T, email string) *entities.Entrepreneur {
	t.Helper()
	e, err := s.reg.RegisterEntrepreneur(context.Background(), input.NewEntrepreneur{
		FullName: "Roberto Santos", Email: email, Phone: "(11) 77777-7777", Company: "EduTech Solutions",
	})
	if err != nil {
		t.Fatalf("register entrepreneur: %v", err)
	}
	return e
}

func (s *services) group(t *testing.T, email string) *entities.StudentGroup {
	t.Helper()
	g, err := s.reg.RegisterStudentGroup(context.Background(), input.NewStudentGroup{
		RepresentativeName: "Beatriz", Email: email, RA: "1110481", Semester: 4,
		Members: []string{"Beatriz", "Caio"}, Interests: []string{"educacao"},
	})
	if err != nil {
		t.Fatalf("register student group: %v", err)
	}
	return g
}

func (s *services) project(t *testing.T, owner, title, deadline, complexity string) *entities.Project {
	t.Helper()
	p, err := s.projects.CreateProject(context.Background(), input.NewProject{
		EntrepreneurID: owner, Title: title, Description: "desc", ProjectType: domain.ProjectTypeWebSystem,
		BusinessArea: "educacao", Deadline: deadline, Complexity: complexity, Technologies: []string{"Go"},
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return p
}

func TestRegisterEntrepreneur(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newServices(t)

	e := s.entrepreneur(t, "roberto@edutech.com")
	got, err := s.reg.GetEntrepreneur(ctx, e.ID)
	if err != nil {
		t.Fatalf("get entrepreneur: %v", err)
	}
	if got.FullName != "Roberto Santos" || got.Email != "roberto@edutech.com" || got.Company != "EduTech Solutions" {
		t.Fatalf("entrepreneur = %+v", got)
	}
	if got.ID == "" || got.CreatedAt.After(time.Now()) {
		t.Fatalf("bad id/createdAt: %+v", got)
	}

	user, err := memory.NewUserRepository(s.store).FindByUsername(ctx, "roberto@edutech.com")
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if !strings.HasPrefix(user.PasswordHash, "hashed:") || user.PasswordHash == "hashed:" {
		t.Fatalf("password hash = %q", user.PasswordHash)
	}

	_, err = s.reg.RegisterStudentGroup(ctx, input.NewStudentGroup{Email: "roberto@edutech.com"})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("duplicate err = %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterWithPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newServices(t)

	_, err := s.reg.RegisterEntrepreneur(ctx, input.NewEntrepreneur{Email: "a@b.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	user, _ := memory.NewUserRepository(s.store).FindByUsername(ctx, "a@b.com")
	if err := (stubHasher{}).Compare(user.PasswordHash, "s3cret-pass"); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestListProjectsFiltersJoinsAndSorts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newServices(t)

	e := s.entrepreneur(t, "e@x.com")
	g := s.group(t, "g@x.com")
	slow := s.project(t, e.ID, "slow", domain.Deadline6PlusMonth, domain.ComplexityAdvanced)
	fast := s.project(t, e.ID, "fast", domain.Deadline1Month, domain.ComplexityBasic)
	mid := s.project(t, e.ID, "mid", domain.Deadline1To3Months, domain.ComplexityIntermediate)
	if _, err := s.interests.ExpressInterest(ctx, input.NewProjectInterest{ProjectID: fast.ID, StudentGroupID: g.ID}); err != nil {
		t.Fatalf("express interest: %v", err)
	}

	recent, err := s.projects.ListProjects(ctx, domain.ProjectFilter{}, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recent) != 3 || recent[0].ID != mid.ID || recent[2].ID != slow.ID {
		t.Fatalf("recent order = %v", titles(recent))
	}
	for _, p := range recent {
		if p.Entrepreneur.ID != e.ID {
			t.Fatalf("entrepreneur not joined on %s", p.Title)
		}
		want := 0
		if p.ID == fast.ID {
			want = 1
		}
		if p.InterestCount != want {
			t.Fatalf("%s interestCount = %d, want %d", p.Title, p.InterestCount, want)
		}
	}

	byDeadline, _ := s.projects.ListProjects(ctx, domain.ProjectFilter{}, domain.SortDeadline)
	if got := titles(byDeadline); got != "fast,mid,slow" {
		t.Fatalf("deadline order = %s", got)
	}

	basic, _ := s.projects.ListProjects(ctx, domain.ProjectFilter{Complexity: domain.ComplexityBasic}, "")
	if len(basic) != 1 || basic[0].ID != fast.ID {
		t.Fatalf("complexity filter = %v", titles(basic))
	}

	none, err := s.projects.ListProjects(ctx, domain.ProjectFilter{BusinessArea: "agro"}, "")
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("no-match = %v, %v", none, err)
	}

	if _, err := s.projects.ListProjects(ctx, domain.ProjectFilter{}, "title"); !errors.Is(err, domain.ErrInvalidSort) {
		t.Fatalf("bad sort err = %v", err)
	}
}

func titles(ps []entities.ProjectWithEntrepreneur) string {
	out := make([]string, len(ps))
	for i := range ps {
		out[i] = ps[i].Title
	}
	return strings.Join(out, ",")
}

func TestProjectDetailsWithInterests(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newServices(t)

	e := s.entrepreneur(t, "e@x.com")
	g1 := s.group(t, "g1@x.com")
	g2 := s.group(t, "g2@x.com")
	p := s.project(t, e.ID, "vet", domain.Deadline3To6Months, domain.ComplexityIntermediate)
	for _, g := range []*entities.StudentGroup{g1, g2} {
		if _, err := s.interests.ExpressInterest(ctx, input.NewProjectInterest{ProjectID: p.ID, StudentGroupID: g.ID}); err != nil {
			t.Fatalf("express interest: %v", err)
		}
	}

	d, err := s.projects.GetProjectDetails(ctx, p.ID)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if d.Entrepreneur.ID != e.ID {
		t.Fatalf("entrepreneur = %+v", d.Entrepreneur)
	}
	if len(d.Interests) != 2 {
		t.Fatalf("interests = %d, want 2", len(d.Interests))
	}
	if d.Interests[0].Project.ID != p.ID || d.Interests[0].StudentGroup.ID != g1.ID || d.Interests[1].StudentGroup.ID != g2.ID {
		t.Fatalf("nested joins wrong: %+v", d.Interests)
	}

	if _, err := s.projects.GetProjectDetails(ctx, "missing"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestDanglingReferenceIsReported(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newServices(t)

	orphan := &entities.Project{EntrepreneurID: "ghost", Title: "orphan"}
	if err := memory.NewProjectRepository(s.store).Create(ctx, orphan); err != nil {
		t.Fatalf("create orphan: %v", err)
	}
	if _, err := s.projects.ListProjects(ctx, domain.ProjectFilter{}, ""); !errors.Is(err, domain.ErrDanglingReference) {
		t.Fatalf("list err = %v, want ErrDanglingReference", err)
	}
	if _, err := s.projects.GetProjectDetails(ctx, orphan.ID); !errors.Is(err, domain.ErrDanglingReference) {
		t.Fatalf("details err = %v, want ErrDanglingReference", err)
	}
}

func TestCreateProjectUnknownEntrepreneur(t *testing.T) {
	t.Parallel()
	s := newServices(t)

	_, err := s.projects.CreateProject(context.Background(), input.NewProject{EntrepreneurID: "nobody"})
	var ref *domain.ReferenceError
	if !errors.As(err, &ref) || ref.Field != "entrepreneurId" {
		t.Fatalf("err = %v, want ReferenceError on entrepreneurId", err)
	}
}

func TestExpressInterestValidatesReferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newServices(t)

	e := s.entrepreneur(t, "e@x.com")
	g := s.group(t, "g@x.com")
	p := s.project(t, e.ID, "p", domain.Deadline1Month, domain.ComplexityBasic)

	var ref *domain.ReferenceError
	_, err := s.interests.ExpressInterest(ctx, input.NewProjectInterest{ProjectID: "nope", StudentGroupID: g.ID})
	if !errors.As(err, &ref) || ref.Field != "projectId" {
		t.Fatalf("unknown project err = %v", err)
	}
	_, err = s.interests.ExpressInterest(ctx, input.NewProjectInterest{ProjectID: p.ID, StudentGroupID: "nope"})
	if !errors.As(err, &ref) || ref.Field != "studentGroupId" {
		t.Fatalf("unknown group err = %v", err)
	}

	msg := "temos experiência com React"
	i, err := s.interests.ExpressInterest(ctx, input.NewProjectInterest{ProjectID: p.ID, StudentGroupID: g.ID, Message: &msg})
	if err != nil {
		t.Fatalf("express interest: %v", err)
	}
	if i.Status != domain.InterestStatusPending || i.Message == nil || *i.Message != msg {
		t.Fatalf("interest = %+v", i)
	}

	list, err := s.interests.GetInterestsByStudentGroup(ctx, g.ID)
	if err != nil || len(list) != 1 || list[0].Project.ID != p.ID {
		t.Fatalf("by group = %+v, %v", list, err)
	}
	if _, err := s.interests.GetInterestsByStudentGroup(ctx, "nope"); !errors.Is(err, domain.ErrStudentGroupNotFound) {
		t.Fatalf("unknown group list err = %v", err)
	}
}

func TestStatusUpdates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newServices(t)

	e := s.entrepreneur(t, "e@x.com")
	g := s.group(t, "g@x.com")
	p := s.project(t, e.ID, "p", domain.Deadline1Month, domain.ComplexityBasic)
	i, _ := s.interests.ExpressInterest(ctx, input.NewProjectInterest{ProjectID: p.ID, StudentGroupID: g.ID})

	if _, err := s.projects.UpdateProjectStatus(ctx, p.ID, "archived"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("bad project status err = %v", err)
	}
	up, err := s.projects.UpdateProjectStatus(ctx, p.ID, domain.ProjectStatusCompleted)
	if err != nil || up.Status != domain.ProjectStatusCompleted {
		t.Fatalf("project update = %+v, %v", up, err)
	}

	if _, err := s.interests.UpdateInterestStatus(ctx, i.ID, "maybe"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("bad interest status err = %v", err)
	}
	ui, err := s.interests.UpdateInterestStatus(ctx, i.ID, domain.InterestStatusRejected)
	if err != nil || ui.Status != domain.InterestStatusRejected {
		t.Fatalf("interest update = %+v, %v", ui, err)
	}
	if _, err := s.interests.UpdateInterestStatus(ctx, "nope", domain.InterestStatusAccepted); !errors.Is(err, domain.ErrProjectInterestNotFound) {
		t.Fatalf("missing interest err = %v", err)
	}
}

func TestEvents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newServices(t)

	mk := func(title string, date time.Time) {
		if _, err := s.events.CreateEvent(ctx, input.NewEvent{Title: title, Date: date, StartTime: "14:00", EndTime: "18:00"}); err != nil {
			t.Fatalf("create event: %v", err)
		}
	}
	mk("past", s.now.AddDate(0, -1, 0))
	mk("far", s.now.AddDate(0, 2, 0))
	mk("soon", s.now.AddDate(0, 0, 3))
	mk("now", s.now)

	all, err := s.events.ListEvents(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := eventTitles(all); got != "far,soon,now,past" {
		t.Fatalf("all = %s", got)
	}

	upcoming, err := s.events.ListUpcomingEvents(ctx)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if got := eventTitles(upcoming); got != "soon,far" {
		t.Fatalf("upcoming = %s", got)
	}
	if upcoming[0].Status != domain.EventStatusUpcoming {
		t.Fatalf("status = %q", upcoming[0].Status)
	}
}

func TestCompletePastEvents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newServices(t)

	for _, d := range []time.Time{s.now.AddDate(0, 0, -2), s.now, s.now.AddDate(0, 0, 2)} {
		if _, err := s.events.CreateEvent(ctx, input.NewEvent{Title: d.String(), Date: d}); err != nil {
			t.Fatalf("create event: %v", err)
		}
	}
	n, err := s.events.CompletePastEvents(ctx)
	if err != nil || n != 2 {
		t.Fatalf("CompletePastEvents() = %d, %v, want 2", n, err)
	}
	if n, _ := s.events.CompletePastEvents(ctx); n != 0 {
		t.Fatalf("second sweep changed %d events, want 0", n)
	}
	all, _ := s.events.ListEvents(ctx)
	if all[0].Status != domain.EventStatusUpcoming || all[2].Status != domain.EventStatusCompleted {
		t.Fatalf("statuses = %q, %q", all[0].Status, all[2].Status)
	}
}

func eventTitles(es []entities.Event) string {
	out := make([]string, len(es))
	for i := range es {
		out[i] = es[i].Title
	}
	return strings.Join(out, ",")
}

func TestSeedSampleDataIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newServices(t)

	if err := SeedSampleData(ctx, s.reg, s.projects, s.events); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := SeedSampleData(ctx, s.reg, s.projects, s.events); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	projects, _ := s.projects.ListProjects(ctx, domain.ProjectFilter{}, "")
	if len(projects) != len(sampleProjects) {
		t.Fatalf("projects = %d, want %d", len(projects), len(sampleProjects))
	}
	events, _ := s.events.ListEvents(ctx)
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	landing, _ := s.projects.ListProjects(ctx, domain.ProjectFilter{ProjectType: domain.ProjectTypeLandingPage}, "")
	if len(landing) != 1 || landing[0].Entrepreneur.Company != "EduTech Solutions" {
		t.Fatalf("landing = %+v", landing)
	}
}
