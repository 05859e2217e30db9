package service

import (
	"context"

	"github.com/sirupsen/logrus"
)

// ChargeArgs параметры списания реальных денег за покупку токенов. EntryID ссылается
// на pending запись журнала, под которую выполняется списание.
type ChargeArgs struct {
	UserID  int64
	Amount  int64
	EntryID int64
}

// StubFundsGateway заглушка платежного шлюза: подтверждает любое списание. Интеграция
// с реальным эквайрингом живет в отдельной системе и сюда не протаскивается.
type StubFundsGateway struct {
	logger *logrus.Logger
}

func NewStubFundsGateway(l *logrus.Logger) *StubFundsGateway {
	return &StubFundsGateway{logger: l}
}

func (g *StubFundsGateway) Charge(_ context.Context, args ChargeArgs) error {
	g.logger.WithFields(logrus.Fields{
		"userID":  args.UserID,
		"amount":  args.Amount,
		"entryID": args.EntryID,
	}).Info("stub funds gateway: charge approved")
	return nil
}
