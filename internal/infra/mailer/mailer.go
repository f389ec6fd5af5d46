// Package mailer delivers the low-stock alert mails to the board. Delivery
// is fire-and-forget from the caller's point of view: a failed mail is
// logged and dropped, it never fails a booking.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"clubtab/internal/pkg/config"
)

const sendTimeout = 10 * time.Second

type LowStockMailer struct {
	cfg config.MailConfig
}

func New(cfg config.MailConfig) *LowStockMailer {
	return &LowStockMailer{cfg: cfg}
}

func (m *LowStockMailer) NotifyLowStock(ctx context.Context, drinkName string, stockUnits int64, threshold int32) {
	subject := fmt.Sprintf("Getränkekasse: %s fast leer (%d Flaschen)", drinkName, stockUnits)
	body := fmt.Sprintf(
		"Der Bestand von %s ist auf %d Flaschen gefallen (Schwelle: %d).\nBitte Nachschub besorgen.\n",
		drinkName, stockUnits, threshold,
	)

	if m.cfg.MockMode {
		slog.Info("mock low-stock mail",
			"recipients", strings.Join(m.cfg.AlertRecipients, ","),
			"subject", subject)
		return
	}

	msg := buildMessage(m.cfg.Sender, m.cfg.AlertRecipients, subject, body)
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, nil, m.cfg.Sender, m.cfg.AlertRecipients, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			slog.Error("failed to send low-stock mail", "drink", drinkName, "error", err.Error())
			return
		}
		slog.Info("low-stock mail sent", "drink", drinkName, "stock_units", stockUnits)
	case <-time.After(sendTimeout):
		slog.Error("low-stock mail timed out", "drink", drinkName, "addr", addr)
	case <-ctx.Done():
		slog.Warn("low-stock mail aborted", "drink", drinkName, "error", ctx.Err().Error())
	}
}

func buildMessage(sender string, recipients []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", sender)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
