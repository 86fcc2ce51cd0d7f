package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"
	"golang.org/x/text/currency"

	"GrowthCalc/internal/i18n"
	"GrowthCalc/internal/plan"
	"GrowthCalc/internal/recorder"
	"GrowthCalc/internal/report"
	"GrowthCalc/internal/service"
)

// Sender delivers a report; *notifier.TelegramNotifier satisfies it.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler runs the periodic plan report and answers bot commands.
type Scheduler struct {
	Cron     *cron.Cron
	Service  *service.ProjectionService
	Plans    *plan.Store
	Notifier Sender // nil when Telegram is not configured
	Unit     currency.Unit
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *service.ProjectionService, plans *plan.Store, sender Sender, unit currency.Unit) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Service:  svc,
		Plans:    plans,
		Notifier: sender,
		Unit:     unit,
		Ctx:      ctx,
	}
}

// RegisterAll registers the plan report task.
func (s *Scheduler) RegisterAll(reportCron string) error {
	if _, err := s.Cron.AddFunc(reportCron, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunReportNow executes the report task immediately (for RUN_ON_START).
func (s *Scheduler) RunReportNow() {
	s.reportTask()
}

func (s *Scheduler) reportTask() {
	log.Println("[INFO] running plan report task")
	text, err := s.planReport(s.Ctx, recorder.SourceSchedule)
	if err != nil {
		log.Printf("[ERROR] plan report: %v", err)
		return
	}
	s.trySend(text)
}

func (s *Scheduler) planReport(ctx context.Context, source recorder.Source) (string, error) {
	p := s.Plans.Get()
	in, err := plan.Input(p)
	if err != nil {
		return "", err
	}
	result, err := s.Service.Project(ctx, in, source)
	if err != nil {
		return "", err
	}
	return report.TelegramReport(p, result, plan.Tag(p), s.Unit), nil
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	p := s.Plans.Get()
	tag := plan.Tag(p)
	printer := i18n.Printer(tag)

	fields := strings.Fields(command)
	if len(fields) == 0 {
		return printer.Sprintf(i18n.KeyCommands)
	}

	switch fields[0] {
	case "/project":
		text, err := s.planReport(ctx, recorder.SourceTelegram)
		if err != nil {
			log.Printf("[ERROR] /project: %v", err)
			return err.Error()
		}
		return text
	case "/plan":
		return report.PlanSummary(p, tag, s.Unit)
	case "/lang":
		if len(fields) < 2 {
			return printer.Sprintf(i18n.KeyCommands)
		}
		newTag, err := s.Plans.SetLocale(fields[1])
		if err != nil {
			return printer.Sprintf(i18n.KeyUnknownLanguage, fields[1])
		}
		return i18n.Printer(newTag).Sprintf(i18n.KeyLanguageSet, i18n.Code(newTag))
	default:
		return printer.Sprintf(i18n.KeyCommands)
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		log.Printf("[INFO] notifier disabled, report not sent:\n%s", text)
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
