// Package notify memisahkan "kirim pemberitahuan" dari logika workflow.
// Workflow cukup memanggil Notify(event); transport (log, email, push)
// urusan implementasi.
package notify

import (
	"context"
	"log"
	"time"
)

type Event struct {
	Kind      string    // mis. "registration.approved", "correction.rejected", "auth.reset_otp"
	SubjectID string    // user yang terdampak
	ActorID   string    // admin/pengambil keputusan, boleh kosong
	Note      string    // alasan / catatan / isi OTP
	At        time.Time
}

type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}

// LogNotifier: implementasi default, cukup catat ke stdout.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, ev Event) error {
	log.Printf("[NOTIFY] kind=%s subject=%s actor=%s note=%q", ev.Kind, ev.SubjectID, ev.ActorID, ev.Note)
	return nil
}

var defaultNotifier Notifier = LogNotifier{}

// SetDefault mengganti notifier global (dipakai saat bootstrap/testing).
func SetDefault(n Notifier) {
	if n != nil {
		defaultNotifier = n
	}
}

func Default() Notifier {
	return defaultNotifier
}
