package impl

import (
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"rxconsole/internal/domain/entity"
	"rxconsole/internal/domain/service"
)

// fixedNow is a Wednesday.
var fixedNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testClock() time.Time {
	return fixedNow
}

func driver(id, name, email string) entity.Driver {
	return entity.Driver{
		Base:    entity.Base{ID: id, CreatedAt: fixedNow.Add(-time.Hour)},
		Name:    name,
		Email:   email,
		Phone:   "555-0100",
		Address: "1 Main St",
		Status:  entity.StatusActive,
	}
}

func driverPage(page, limit, total int, drivers ...entity.Driver) entity.PageWindow[entity.Driver] {
	return entity.NewPageWindow(drivers, page, limit, total)
}

func deliveryZone(id, name string) entity.DeliveryZone {
	return entity.DeliveryZone{
		Base:        entity.Base{ID: id, CreatedAt: fixedNow},
		Name:        name,
		ZipCodes:    []string{"10001", "10002"},
		DeliveryFee: 4.5,
		Status:      entity.StatusActive,
	}
}

func notification(id, message string, read bool) entity.Notification {
	return entity.Notification{
		ID:        id,
		Message:   message,
		Role:      "admin",
		IsRead:    read,
		CreatedAt: fixedNow.Add(-time.Minute),
	}
}

func notificationPage(unread int, items ...entity.Notification) *entity.NotificationPage {
	return &entity.NotificationPage{
		Window:      entity.NewPageWindow(items, 1, 10, len(items)),
		UnreadCount: unread,
	}
}

// recordingExporter keeps the rows it was asked to write.
type recordingExporter struct {
	format service.ExportFormat
	rows   []service.ExportRows
}

func (e *recordingExporter) Format() service.ExportFormat {
	return e.format
}

func (e *recordingExporter) Write(w io.Writer, title string, rows service.ExportRows) error {
	e.rows = append(e.rows, rows)
	_, err := io.WriteString(w, title+"\n"+strings.Join(rows.Columns, ","))

	return err
}

// fakeStream is an in-process event stream.
type fakeStream struct {
	mu           sync.Mutex
	handlers     map[int]service.EventHandler
	next         int
	subscribes   int
	unsubscribes int
}

func newFakeStream() *fakeStream {
	return &fakeStream{handlers: make(map[int]service.EventHandler)}
}

func (s *fakeStream) Subscribe(handler service.EventHandler) service.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.subscribes++
	s.handlers[s.next] = handler

	return &fakeSubscription{stream: s, id: s.next}
}

func (s *fakeStream) emit(name string) {
	s.mu.Lock()
	handlers := make([]service.EventHandler, 0, len(s.handlers))
	for _, h := range s.handlers {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h(service.Event{Name: name, ReceivedAt: fixedNow})
	}
}

func (s *fakeStream) counts() (subscribed, active, unsubscribed int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.subscribes, len(s.handlers), s.unsubscribes
}

type fakeSubscription struct {
	stream *fakeStream
	id     int
	once   sync.Once
}

func (f *fakeSubscription) Unsubscribe() {
	f.once.Do(func() {
		f.stream.mu.Lock()
		defer f.stream.mu.Unlock()

		delete(f.stream.handlers, f.id)
		f.stream.unsubscribes++
	})
}
