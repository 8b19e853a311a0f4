//go:build unit

package commands_test

import (
	"context"
	"testing"

	domcart "maison-storefront/internal/domain/cart"
	"maison-storefront/internal/pkg/errs"
	"maison-storefront/internal/usecase/commands"
	"maison-storefront/tests/common/builder"
	commandsmock "maison-storefront/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSessionKey = "session_1726000000000_abc123def"

type CartCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	gateway  *commandsmock.MockCartGateway
	cmds     commands.CartCommands
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = commandsmock.NewMockCartGateway(s.mockCtrl)
	s.cmds = commands.NewCartCommands(s.gateway)
}

func (s *CartCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func (s *CartCommandsTestSuite) TestGet() {
	snapshot := builder.BuildSnapshot(builder.NewCartItemBuilder().BuildDomain())
	s.gateway.EXPECT().FetchCart(gomock.Any(), testSessionKey).Return(snapshot, nil)

	got, err := s.cmds.Get(context.Background(), testSessionKey)

	s.NoError(err)
	s.Equal(snapshot, got)
}

func (s *CartCommandsTestSuite) TestAddItem() {
	item := builder.NewCartItemBuilder().BuildCommand()

	s.Run("successful add reloads the cart", func() {
		reloaded := builder.BuildSnapshot(builder.NewCartItemBuilder().WithQuantity(1).BuildDomain())
		gomock.InOrder(
			s.gateway.EXPECT().AddItem(gomock.Any(), testSessionKey, item).Return(nil),
			s.gateway.EXPECT().FetchCart(gomock.Any(), testSessionKey).Return(reloaded, nil),
		)

		got, err := s.cmds.AddItem(context.Background(), testSessionKey, item)

		s.NoError(err)
		s.Equal(reloaded, got)
	})

	s.Run("quantity below one never reaches the backend", func() {
		bad := item
		bad.Quantity = 0

		_, err := s.cmds.AddItem(context.Background(), testSessionKey, bad)

		s.ErrorIs(err, domcart.ErrQuantityTooSmall)
	})

	s.Run("failed mutation does not reload", func() {
		backendErr := errs.New("boom")
		s.gateway.EXPECT().AddItem(gomock.Any(), testSessionKey, item).Return(backendErr)

		_, err := s.cmds.AddItem(context.Background(), testSessionKey, item)

		s.ErrorIs(err, backendErr)
	})
}

func (s *CartCommandsTestSuite) TestUpdateQuantity() {
	current := builder.BuildSnapshot(builder.NewCartItemBuilder().WithID(7).WithQuantity(1).BuildDomain())

	s.Run("known item is updated then reloaded", func() {
		reloaded := builder.BuildSnapshot(builder.NewCartItemBuilder().WithID(7).WithQuantity(3).BuildDomain())
		gomock.InOrder(
			s.gateway.EXPECT().FetchCart(gomock.Any(), testSessionKey).Return(current, nil),
			s.gateway.EXPECT().UpdateItem(gomock.Any(), testSessionKey, int64(7), 3).Return(nil),
			s.gateway.EXPECT().FetchCart(gomock.Any(), testSessionKey).Return(reloaded, nil),
		)

		got, err := s.cmds.UpdateQuantity(context.Background(), testSessionKey, 7, 3)

		s.NoError(err)
		s.Equal(reloaded, got)
	})

	s.Run("unknown item is a no-op returning the current snapshot", func() {
		s.gateway.EXPECT().FetchCart(gomock.Any(), testSessionKey).Return(current, nil)

		got, err := s.cmds.UpdateQuantity(context.Background(), testSessionKey, 99, 3)

		s.NoError(err)
		s.Equal(current, got)
	})

	s.Run("quantity below one is rejected locally", func() {
		_, err := s.cmds.UpdateQuantity(context.Background(), testSessionKey, 7, 0)

		s.ErrorIs(err, domcart.ErrQuantityTooSmall)
	})
}

func (s *CartCommandsTestSuite) TestRemoveItem() {
	current := builder.BuildSnapshot(builder.NewCartItemBuilder().WithID(7).BuildDomain())

	s.Run("known item is removed then reloaded", func() {
		gomock.InOrder(
			s.gateway.EXPECT().FetchCart(gomock.Any(), testSessionKey).Return(current, nil),
			s.gateway.EXPECT().RemoveItem(gomock.Any(), testSessionKey, int64(7)).Return(nil),
			s.gateway.EXPECT().FetchCart(gomock.Any(), testSessionKey).Return(domcart.Empty(), nil),
		)

		got, err := s.cmds.RemoveItem(context.Background(), testSessionKey, 7)

		s.NoError(err)
		s.True(got.IsEmpty())
	})

	s.Run("unknown item is a no-op", func() {
		s.gateway.EXPECT().FetchCart(gomock.Any(), testSessionKey).Return(current, nil)

		got, err := s.cmds.RemoveItem(context.Background(), testSessionKey, 99)

		s.NoError(err)
		s.Equal(current, got)
	})
}

func (s *CartCommandsTestSuite) TestClear() {
	s.Run("successful clear returns empty without reloading", func() {
		s.gateway.EXPECT().ClearCart(gomock.Any(), testSessionKey).Return(nil)

		got, err := s.cmds.Clear(context.Background(), testSessionKey)

		s.NoError(err)
		s.True(got.IsEmpty())
	})

	s.Run("failed clear propagates the error", func() {
		backendErr := errs.New("boom")
		s.gateway.EXPECT().ClearCart(gomock.Any(), testSessionKey).Return(backendErr)

		_, err := s.cmds.Clear(context.Background(), testSessionKey)

		s.ErrorIs(err, backendErr)
	})
}

func (s *CartCommandsTestSuite) TestNoopCart() {
	noop := commands.NewNoopCart()

	snapshot, err := noop.AddItem(context.Background(), "", builder.NewCartItemBuilder().BuildCommand())
	s.NoError(err)
	s.True(snapshot.IsEmpty())

	snapshot, err = noop.Get(context.Background(), "")
	s.NoError(err)
	s.True(snapshot.IsEmpty())
}
