package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venturelink-platform/internal/domain/meeting"
	"github.com/venturelink-platform/internal/domain/transaction"
	"github.com/venturelink-platform/internal/domain/user"
	"github.com/venturelink-platform/internal/domain/wallet"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u, err := user.NewUser("Ada Founder", "ada@example.com", user.RoleEntrepreneur)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Email, got.Email)

		_, err = repo.GetByID(ctx, uuid.New())
		var notFound user.ErrUserNotFound
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("GetByEmailCaseInsensitive", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "ADA@Example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("GetByEmailMissingIsNilNil", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		dup, err := user.NewUser("Other", "ada@example.com", user.RoleInvestor)
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		var dupErr user.ErrDuplicateEmail
		assert.ErrorAs(t, err, &dupErr)
	})
}

func TestWalletRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewWalletRepository()
	userID := uuid.New()

	w, err := wallet.NewWallet(userID, 1000000, "USD")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, w))

	t.Run("GetByUserID", func(t *testing.T) {
		got, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1000000), got.Balance)

		_, err = repo.GetByUserID(ctx, uuid.New())
		var notFound wallet.ErrWalletNotFound
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("UpdateBalanceBumpsVersion", func(t *testing.T) {
		require.NoError(t, repo.UpdateBalance(ctx, userID, 900000, 1))

		got, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(900000), got.Balance)
		assert.Equal(t, 2, got.Version)
	})

	t.Run("StaleVersionRejected", func(t *testing.T) {
		err := repo.UpdateBalance(ctx, userID, 1, 1)
		var conflict wallet.ErrConcurrentModification
		assert.ErrorAs(t, err, &conflict)

		got, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(900000), got.Balance, "Rejected update must not mutate")
	})

	t.Run("MutatingReturnedCopyDoesNotLeak", func(t *testing.T) {
		got, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		got.Balance = -1

		again, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(900000), again.Balance)
	})

	t.Run("DuplicateCreateRejected", func(t *testing.T) {
		again, err := wallet.NewWallet(userID, 500, "USD")
		require.NoError(t, err)

		err = repo.Create(ctx, again)
		var exists wallet.ErrWalletExists
		assert.ErrorAs(t, err, &exists)

		got, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(900000), got.Balance, "Lost creation race must not reset the balance")
	})
}

func TestWalletRepository_TransferBalances(t *testing.T) {
	ctx := context.Background()

	newPair := func(t *testing.T) (*WalletRepository, uuid.UUID, uuid.UUID) {
		t.Helper()
		repo := NewWalletRepository()
		sender, recipient := uuid.New(), uuid.New()
		for _, id := range []uuid.UUID{sender, recipient} {
			w, err := wallet.NewWallet(id, 1000, "USD")
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, w))
		}
		return repo, sender, recipient
	}

	t.Run("AppliesBothSides", func(t *testing.T) {
		repo, sender, recipient := newPair(t)

		err := repo.TransferBalances(ctx,
			wallet.BalanceChange{UserID: sender, Balance: 600, Version: 1},
			wallet.BalanceChange{UserID: recipient, Balance: 1400, Version: 1},
		)
		require.NoError(t, err)

		senderWallet, err := repo.GetByUserID(ctx, sender)
		require.NoError(t, err)
		assert.Equal(t, int64(600), senderWallet.Balance)
		assert.Equal(t, 2, senderWallet.Version)

		recipientWallet, err := repo.GetByUserID(ctx, recipient)
		require.NoError(t, err)
		assert.Equal(t, int64(1400), recipientWallet.Balance)
		assert.Equal(t, 2, recipientWallet.Version)
	})

	t.Run("StaleCreditVersionLeavesBothSidesUntouched", func(t *testing.T) {
		repo, sender, recipient := newPair(t)

		err := repo.TransferBalances(ctx,
			wallet.BalanceChange{UserID: sender, Balance: 600, Version: 1},
			wallet.BalanceChange{UserID: recipient, Balance: 1400, Version: 99},
		)
		var conflict wallet.ErrConcurrentModification
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, recipient, conflict.UserID)

		senderWallet, err := repo.GetByUserID(ctx, sender)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), senderWallet.Balance, "Sender must not stay debited")
		assert.Equal(t, 1, senderWallet.Version)

		recipientWallet, err := repo.GetByUserID(ctx, recipient)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), recipientWallet.Balance)
	})

	t.Run("MissingWalletFailsWholeTransfer", func(t *testing.T) {
		repo, sender, _ := newPair(t)

		err := repo.TransferBalances(ctx,
			wallet.BalanceChange{UserID: sender, Balance: 600, Version: 1},
			wallet.BalanceChange{UserID: uuid.New(), Balance: 1400, Version: 1},
		)
		var notFound wallet.ErrWalletNotFound
		require.ErrorAs(t, err, &notFound)

		senderWallet, err := repo.GetByUserID(ctx, sender)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), senderWallet.Balance)
	})
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository()
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	mk := func(txType transaction.Type, sender uuid.UUID, receiver *uuid.UUID, at time.Time) *transaction.Transaction {
		tx, err := transaction.New(txType, 100, sender, receiver, "")
		require.NoError(t, err)
		tx.CreatedAt = at
		require.NoError(t, repo.Append(ctx, tx))
		return tx
	}

	base := time.Now()
	first := mk(transaction.TypeDeposit, alice, nil, base)
	second := mk(transaction.TypeTransfer, alice, &bob, base.Add(time.Second))
	mk(transaction.TypeDeposit, carol, nil, base.Add(2*time.Second))

	t.Run("ListNewestFirstFilteredByParticipant", func(t *testing.T) {
		entries, err := repo.ListByParticipant(ctx, alice, 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, second.ID, entries[0].ID, "Newest entry first")
		assert.Equal(t, first.ID, entries[1].ID)

		for _, e := range entries {
			assert.True(t, e.Involves(alice))
		}
	})

	t.Run("ReceiverSeesTransfer", func(t *testing.T) {
		entries, err := repo.ListByParticipant(ctx, bob, 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, second.ID, entries[0].ID)
	})

	t.Run("LimitAndOffset", func(t *testing.T) {
		entries, err := repo.ListByParticipant(ctx, alice, 1, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, second.ID, entries[0].ID)

		entries, err = repo.ListByParticipant(ctx, alice, 1, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, first.ID, entries[0].ID)

		entries, err = repo.ListByParticipant(ctx, alice, 1, 5)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Count", func(t *testing.T) {
		count, err := repo.CountByParticipant(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)

		_, err = repo.GetByID(ctx, uuid.New())
		var notFound transaction.ErrTransactionNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestMeetingRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMeetingRepository()
	organizer := uuid.New()
	attendee := uuid.New()

	early, err := meeting.NewMeeting(organizer, attendee, "Early", "", time.Now().Add(time.Hour), time.Hour)
	require.NoError(t, err)
	late, err := meeting.NewMeeting(organizer, attendee, "Late", "", time.Now().Add(48*time.Hour), time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, late))
	require.NoError(t, repo.Create(ctx, early))

	t.Run("ListByParticipantOrderedByStart", func(t *testing.T) {
		meetings, err := repo.ListByParticipant(ctx, organizer)
		require.NoError(t, err)
		require.Len(t, meetings, 2)
		assert.Equal(t, "Early", meetings[0].Title)
		assert.Equal(t, "Late", meetings[1].Title)

		meetings, err = repo.ListByParticipant(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, meetings)
	})

	t.Run("PendingInboxBelongsToAttendee", func(t *testing.T) {
		pending, err := repo.ListPendingForAttendee(ctx, attendee)
		require.NoError(t, err)
		assert.Len(t, pending, 2)

		pending, err = repo.ListPendingForAttendee(ctx, organizer)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("UpdateTransition", func(t *testing.T) {
		require.NoError(t, early.Respond(attendee, meeting.DecisionAccept))
		require.NoError(t, repo.Update(ctx, early))

		got, err := repo.GetByID(ctx, early.ID)
		require.NoError(t, err)
		assert.Equal(t, meeting.StatusConfirmed, got.Status)

		pending, err := repo.ListPendingForAttendee(ctx, attendee)
		require.NoError(t, err)
		assert.Len(t, pending, 1, "Resolved meeting leaves the inbox")
	})

	t.Run("TerminalStatusIsNeverRewritten", func(t *testing.T) {
		stale := *early
		stale.Status = meeting.StatusDeclined

		err := repo.Update(ctx, &stale)
		assert.ErrorIs(t, err, meeting.ErrNotPending)

		got, err := repo.GetByID(ctx, early.ID)
		require.NoError(t, err)
		assert.Equal(t, meeting.StatusConfirmed, got.Status, "Racing response must not rewrite a resolved meeting")
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		var notFound meeting.ErrMeetingNotFound
		assert.ErrorAs(t, err, &notFound)

		ghost := *early
		ghost.ID = uuid.New()
		assert.ErrorAs(t, repo.Update(ctx, &ghost), &notFound)
	})
}

func TestAvailabilityRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAvailabilityRepository()
	userID := uuid.New()

	monday, err := meeting.NewAvailabilitySlot(userID, 1, "09:00", "12:00", true)
	require.NoError(t, err)
	sunday, err := meeting.NewAvailabilitySlot(userID, 0, "14:00", "16:00", false)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, monday))
	require.NoError(t, repo.Create(ctx, sunday))

	t.Run("ListOrderedByDay", func(t *testing.T) {
		slots, err := repo.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, 0, slots[0].DayOfWeek)
		assert.Equal(t, 1, slots[1].DayOfWeek)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, sunday.ID))

		slots, err := repo.ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, slots, 1)

		err = repo.Delete(ctx, sunday.ID)
		var notFound meeting.ErrSlotNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}
