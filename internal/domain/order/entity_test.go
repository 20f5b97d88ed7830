package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPlaced, StatusAwaitingHandover, true},
		{StatusPlaced, StatusCancelled, true},
		{StatusPlaced, StatusDisputed, true},
		{StatusPlaced, StatusDeliveredConfirmed, false},
		{StatusPlaced, StatusResolved, false},
		{StatusAwaitingHandover, StatusDeliveredConfirmed, true},
		{StatusAwaitingHandover, StatusDisputed, true},
		{StatusAwaitingHandover, StatusCancelled, true},
		{StatusAwaitingHandover, StatusPlaced, false},
		{StatusDeliveredConfirmed, StatusDisputed, false},
		{StatusDeliveredConfirmed, StatusCancelled, false},
		{StatusDisputed, StatusResolved, true},
		{StatusDisputed, StatusCancelled, false},
		{StatusCancelled, StatusPlaced, false},
		{StatusResolved, StatusDisputed, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusDeliveredConfirmed.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusResolved.Terminal())
	assert.False(t, StatusPlaced.Terminal())
	assert.False(t, StatusAwaitingHandover.Terminal())
	assert.False(t, StatusDisputed.Terminal())
}

func TestNewStatus(t *testing.T) {
	t.Parallel()

	s, err := NewStatus("AWAITING_HANDOVER")
	require.NoError(t, err)
	assert.Equal(t, StatusAwaitingHandover, s)

	_, err = NewStatus("SHIPPED")
	assert.Error(t, err)
}

func TestOrderApply(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	o := Order{
		Status:   StatusPlaced,
		Timeline: []TimelineEntry{{Status: StatusPlaced, At: now}},
	}

	later := now.Add(time.Hour)
	note := "handover arranged"
	o.Apply(StatusAwaitingHandover, later, &note)

	assert.Equal(t, StatusAwaitingHandover, o.Status)
	require.Len(t, o.Timeline, 2)
	assert.Equal(t, o.Status, o.Timeline[len(o.Timeline)-1].Status)
	assert.Equal(t, later, o.UpdatedAt)
	assert.Equal(t, &note, o.Timeline[1].Note)
}

func TestOrderForActor(t *testing.T) {
	t.Parallel()

	o := Order{BuyerID: "buyer-1", SellerID: "seller-1", Otp: "123456"}

	assert.Equal(t, "123456", o.ForActor("buyer-1").Otp)
	assert.Empty(t, o.ForActor("seller-1").Otp)
	assert.Empty(t, o.ForActor("someone-else").Otp)
}

func TestOrderRoleOf(t *testing.T) {
	t.Parallel()

	o := Order{BuyerID: "buyer-1", SellerID: "seller-1"}

	role, ok := o.RoleOf("buyer-1")
	assert.True(t, ok)
	assert.Equal(t, RoleBuyer, role)

	role, ok = o.RoleOf("seller-1")
	assert.True(t, ok)
	assert.Equal(t, RoleSeller, role)

	_, ok = o.RoleOf("outsider")
	assert.False(t, ok)
}

func TestCancellationPolicyAllows(t *testing.T) {
	t.Parallel()

	assert.True(t, CancelEither.Allows(RoleBuyer))
	assert.True(t, CancelEither.Allows(RoleSeller))
	assert.True(t, CancelBuyerOnly.Allows(RoleBuyer))
	assert.False(t, CancelBuyerOnly.Allows(RoleSeller))
	assert.False(t, CancelSellerOnly.Allows(RoleBuyer))
	assert.True(t, CancelSellerOnly.Allows(RoleSeller))
}

func TestGenerateOtp(t *testing.T) {
	t.Parallel()

	for range 100 {
		otp := generateOtp()
		require.Len(t, otp, 6)
	}
}
