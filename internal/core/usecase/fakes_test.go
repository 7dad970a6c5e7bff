package usecase

import (
	"context"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
	"sync"
)

// fakeBackend записывает вызовы и отдает заранее заданные ответы.
type fakeBackend struct {
	mu sync.Mutex

	pending    []domain.Property
	pendingErr error
	mine       []domain.Property
	mineErr    error
	moderation error
	createErr  error
	created    *domain.Property
	agents     []domain.Agent
	agentsErr  error
	agent      *domain.Agent

	// echoCreated: CreateProperty возвращает объявление с заголовком из запроса.
	echoCreated bool

	// createGate, если задан, блокирует CreateProperty до закрытия.
	createGate chan struct{}
	createdIn  chan struct{}
	inOnce     sync.Once
	// createCtxErr - ctx.Err() запроса в backend после прохода через createGate.
	createCtxErr []error

	calls []string
	sent  []string
	posts []*domain.NewProperty
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeBackend) GetPendingListings(context.Context, *domain.Session) ([]domain.Property, error) {
	f.record("pending")
	return f.pending, f.pendingErr
}

func (f *fakeBackend) ApproveListing(_ context.Context, _ *domain.Session, _ int64, message string) error {
	f.record("approve")
	f.mu.Lock()
	f.sent = append(f.sent, message)
	f.mu.Unlock()
	return f.moderation
}

func (f *fakeBackend) RejectListing(_ context.Context, _ *domain.Session, _ int64, reason string) error {
	f.record("reject")
	f.mu.Lock()
	f.sent = append(f.sent, reason)
	f.mu.Unlock()
	return f.moderation
}

func (f *fakeBackend) GetMyListings(context.Context, *domain.Session) ([]domain.Property, error) {
	f.record("mine")
	return f.mine, f.mineErr
}

func (f *fakeBackend) CreateProperty(ctx context.Context, _ *domain.Session, p *domain.NewProperty) (*domain.Property, error) {
	f.record("create")
	f.mu.Lock()
	f.posts = append(f.posts, p)
	id := int64(len(f.posts))
	f.mu.Unlock()
	if f.createdIn != nil {
		f.inOnce.Do(func() { close(f.createdIn) })
	}
	if f.createGate != nil {
		<-f.createGate
	}
	f.mu.Lock()
	f.createCtxErr = append(f.createCtxErr, ctx.Err())
	f.mu.Unlock()
	if f.echoCreated && f.createErr == nil {
		return &domain.Property{ID: id, Title: p.Title}, nil
	}
	return f.created, f.createErr
}

func (f *fakeBackend) GetAgent(context.Context, *domain.Session, int64) (*domain.Agent, error) {
	f.record("agent")
	return f.agent, nil
}

func (f *fakeBackend) ListAgents(context.Context, *domain.Session) ([]domain.Agent, error) {
	f.record("agents")
	return f.agents, f.agentsErr
}

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, event domain.ActivityEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

func adminSession() *domain.Session {
	return &domain.Session{Token: "t-admin", User: domain.User{Name: "Root", Email: "root@example.com", Role: domain.RoleAdmin}}
}

func agentSession() *domain.Session {
	id := int64(5)
	return &domain.Session{Token: "t-agent", User: domain.User{Name: "Ann Lee", Email: "ann@example.com", Role: domain.RoleAgent, AgentID: &id}}
}

type logEntry struct {
	level string
	msg   string
}

// recordingLogger собирает записи лога, общие для всех WithFields-потомков.
type recordingLogger struct {
	mu      *sync.Mutex
	entries *[]logEntry
}

func newRecordingLogger() recordingLogger {
	return recordingLogger{mu: &sync.Mutex{}, entries: &[]logEntry{}}
}

func (l recordingLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, logEntry{level: level, msg: msg})
}

func (l recordingLogger) has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range *l.entries {
		if e.level == level && e.msg == msg {
			return true
		}
	}
	return false
}

func (l recordingLogger) Info(msg string, _ port.Fields)           { l.add("info", msg) }
func (l recordingLogger) Warn(msg string, _ port.Fields)           { l.add("warn", msg) }
func (l recordingLogger) Error(msg string, _ error, _ port.Fields) { l.add("error", msg) }
func (l recordingLogger) Debug(msg string, _ port.Fields)          { l.add("debug", msg) }
func (l recordingLogger) WithFields(port.Fields) port.LoggerPort   { return l }
