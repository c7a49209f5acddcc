package core

import (
	"context"

	"github.com/0xPolygon/obridge/db"
	"github.com/0xPolygon/obridge/eventlog"
	"github.com/ethereum/go-ethereum/common"
)

// AdminTransition is Transition for operations only the admin may call
func (b *Base) AdminTransition(
	ctx context.Context, op string, caller common.Address, fn func(ctx context.Context, tx *db.Tx) error,
) (err error) {
	defer func() { b.Observe(op, err) }()

	if err := b.authority.CheckAdmin(caller); err != nil {
		return err
	}
	return b.Transition(ctx, fn)
}

// SetSequencer rotates the sequencer. Admin only.
func (b *Base) SetSequencer(ctx context.Context, caller, sequencer common.Address) error {
	return b.AdminTransition(ctx, "setSequencer", caller, func(_ context.Context, tx *db.Tx) error {
		previous := b.authority.Sequencer()
		if err := b.authority.SetSequencer(tx, sequencer); err != nil {
			return err
		}
		_, err := b.events.Append(tx, eventlog.SequencerUpdated, b.Now(),
			eventlog.ActorChangedData{Previous: previous, Current: sequencer})
		if err == nil {
			tx.AddCommitCallback(func() {
				b.logger.Infof("sequencer rotated from %s to %s", previous, sequencer)
			})
		}
		return err
	})
}

// TransferAdmin hands the admin role over. Admin only.
func (b *Base) TransferAdmin(ctx context.Context, caller, admin common.Address) error {
	return b.AdminTransition(ctx, "transferAdmin", caller, func(_ context.Context, tx *db.Tx) error {
		if err := b.authority.TransferAdmin(tx, admin); err != nil {
			return err
		}
		_, err := b.events.Append(tx, eventlog.AdminTransferred, b.Now(),
			eventlog.ActorChangedData{Previous: caller, Current: admin})
		if err == nil {
			tx.AddCommitCallback(func() {
				b.logger.Infof("admin transferred from %s to %s", caller, admin)
			})
		}
		return err
	})
}

// AddVerifier grants the verifier role. Admin only.
func (b *Base) AddVerifier(ctx context.Context, caller, verifier common.Address) error {
	return b.AdminTransition(ctx, "addVerifier", caller, func(_ context.Context, tx *db.Tx) error {
		if err := b.authority.AddVerifier(tx, verifier); err != nil {
			return err
		}
		_, err := b.events.Append(tx, eventlog.VerifierAdded, b.Now(),
			eventlog.ActorChangedData{Current: verifier})
		return err
	})
}

// RemoveVerifier revokes the verifier role. Admin only.
func (b *Base) RemoveVerifier(ctx context.Context, caller, verifier common.Address) error {
	return b.AdminTransition(ctx, "removeVerifier", caller, func(_ context.Context, tx *db.Tx) error {
		if err := b.authority.RemoveVerifier(tx, verifier); err != nil {
			return err
		}
		_, err := b.events.Append(tx, eventlog.VerifierRemoved, b.Now(),
			eventlog.ActorChangedData{Previous: verifier})
		return err
	})
}
