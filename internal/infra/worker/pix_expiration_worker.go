package worker

import (
	"context"
	"log"
	"time"
)

type PixChargeExpirer interface {
	ExpireStalePixCharges(ctx context.Context) (int64, error)
}

// PixExpirationWorker varre cobranças pendentes vencidas e as marca
// como expiradas.
type PixExpirationWorker struct {
	repo         PixChargeExpirer
	tickInterval time.Duration
}

func NewPixExpirationWorker(repo PixChargeExpirer) *PixExpirationWorker {
	return &PixExpirationWorker{
		repo:         repo,
		tickInterval: 1 * time.Minute,
	}
}

func (w *PixExpirationWorker) Start(ctx context.Context) {
	log.Println("🕒 PIX Expiration Worker iniciado (janela de 24h)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.expireOldCharges(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ PIX Expiration Worker encerrado")
			return
		case <-ticker.C:
			w.expireOldCharges(ctx)
		}
	}
}

func (w *PixExpirationWorker) expireOldCharges(ctx context.Context) {
	expired, err := w.repo.ExpireStalePixCharges(ctx)
	if err != nil {
		log.Printf("❌ Erro ao expirar cobranças PIX: %v", err)
		return
	}

	if expired > 0 {
		log.Printf("✅ %d cobrança(s) PIX marcadas como expiradas", expired)
	}
}
