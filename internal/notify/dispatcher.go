// Package notify диспетчер уведомлений о резервациях.
//
// Оркестратор кладет задачу в очередь после коммита транзакции и сразу
// возвращается; отдельная воркер-горутина разбирает очередь и отправляет
// письма. Ошибки отправки изолированы от результата use case по построению:
// они логируются и учитываются в метриках, но никогда не всплывают наверх.
package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"sync"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
)

// Kind тип уведомления, определяет шаблон и тему письма
type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
)

const (
	subjectCreated = "Confirmación de tu Reserva"
	subjectUpdated = "Modificación de tu Reserva"

	templateFileCreated = "reservation_created.html"
	templateFileUpdated = "reservation_updated.html"
)

// Job задача на отправку одного уведомления
type Job struct {
	Kind Kind
	Data domain.NotificationData
}

// Dispatcher очередь уведомлений с воркером
type Dispatcher struct {
	sender    Sender
	templates map[Kind]*template.Template
	jobs      chan Job
	logger    Logger
	metrics   Metrics

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDispatcher создает диспетчер и парсит оба шаблона из templatesDir.
// metrics может быть nil, если метрики выключены.
func NewDispatcher(sender Sender, templatesDir string, queueSize int, logger Logger, metrics Metrics) (*Dispatcher, error) {
	templates := make(map[Kind]*template.Template, 2)

	for kind, file := range map[Kind]string{
		KindCreated: templateFileCreated,
		KindUpdated: templateFileUpdated,
	} {
		tmpl, err := template.ParseFiles(filepath.Join(templatesDir, file))
		if err != nil {
			return nil, fmt.Errorf("notify: failed to parse template %s: %w", file, err)
		}
		templates[kind] = tmpl
	}

	if queueSize <= 0 {
		queueSize = 64
	}

	return &Dispatcher{
		sender:    sender,
		templates: templates,
		jobs:      make(chan Job, queueSize),
		logger:    logger,
		metrics:   metrics,
	}, nil
}

// Start запускает воркер очереди
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for job := range d.jobs {
			d.process(job)
		}
	}()
}

// Close закрывает очередь и дожидается отправки оставшихся задач
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}

// DispatchCreated ставит в очередь уведомление о созданной резервации.
// Никогда не блокирует вызывающего: при переполненной очереди задача
// отбрасывается с предупреждением (уведомления — best effort).
func (d *Dispatcher) DispatchCreated(data domain.NotificationData) {
	d.enqueue(Job{Kind: KindCreated, Data: data})
}

// DispatchUpdated ставит в очередь уведомление об обновленной резервации
func (d *Dispatcher) DispatchUpdated(data domain.NotificationData) {
	d.enqueue(Job{Kind: KindUpdated, Data: data})
}

func (d *Dispatcher) enqueue(job Job) {
	select {
	case d.jobs <- job:
	default:
		d.logger.Warn("notify: queue full, dropping %s notification for reservation id=%d",
			job.Kind, job.Data.ReservationID)
		d.count(job.Kind, "dropped")
	}
}

// process отправляет одно уведомление. Все ошибки терминальны для задачи:
// логируются, учитываются и не ретраятся.
func (d *Dispatcher) process(job Job) {
	if err := d.send(job); err != nil {
		d.logger.Error("notify: failed to send %s notification for reservation id=%d: %v",
			job.Kind, job.Data.ReservationID, err)
		d.count(job.Kind, "failed")
		return
	}

	d.logger.Info("notify: %s notification sent for reservation id=%d to %s",
		job.Kind, job.Data.ReservationID, job.Data.RecipientEmail)
	d.count(job.Kind, "sent")
}

func (d *Dispatcher) send(job Job) error {
	if !job.Data.HasRecipient() {
		return ErrMissingRecipient
	}

	body, err := d.render(job.Kind, job.Data)
	if err != nil {
		return err
	}

	subject := subjectCreated
	if job.Kind == KindUpdated {
		subject = subjectUpdated
	}

	return d.sender.Send(job.Data.RecipientEmail, subject, body)
}

func (d *Dispatcher) render(kind Kind, data domain.NotificationData) (string, error) {
	tmpl, ok := d.templates[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, kind)
	}

	// Контракт данных шаблона: дата, салон, смена
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Fecha string
		Salon string
		Turno string
	}{
		Fecha: data.Date,
		Salon: data.VenueName,
		Turno: data.ShiftLabel,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	return buf.String(), nil
}

func (d *Dispatcher) count(kind Kind, outcome string) {
	if d.metrics != nil {
		d.metrics.IncNotification(string(kind), outcome)
	}
}
