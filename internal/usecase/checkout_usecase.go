package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CheckoutUsecase struct {
	tx repo.TransactionManager

	//trueなら確定時に在庫を減らす（設定で切り替え）
	decrementStock bool
}

func NewCheckoutUsecase(tx repo.TransactionManager, decrementStock bool) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, decrementStock: decrementStock}
}

type CheckoutItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type CreateCheckoutInput struct {
	Address string
	ZipCode int
	Items   []CheckoutItemInput
}

type CreateCheckoutOutput struct {
	CheckoutID int64         `json:"checkout_id"`
	TotalPrice int64         `json:"total_price"`
	Address    model.Address `json:"address"`
}

func validateCreateCheckout(in CreateCheckoutInput) error {
	var issues []FieldIssue

	if len(strings.TrimSpace(in.Address)) < 5 {
		issues = append(issues, FieldIssue{Field: "address", Message: "must be at least 5 characters"})
	}
	if in.ZipCode <= 0 {
		issues = append(issues, FieldIssue{Field: "zip_code", Message: "must be a positive number"})
	}
	if len(in.Items) == 0 {
		issues = append(issues, FieldIssue{Field: "items", Message: "must contain at least 1 item"})
	}
	for i, it := range in.Items {
		if it.ProductID <= 0 {
			issues = append(issues, FieldIssue{Field: fmt.Sprintf("items[%d].product_id", i), Message: "invalid product_id"})
		}
		if it.Quantity < 1 {
			issues = append(issues, FieldIssue{Field: fmt.Sprintf("items[%d].quantity", i), Message: "must be at least 1"})
		}
	}

	if len(issues) > 0 {
		return NewValidationError(issues...)
	}
	return nil
}

// CreateCheckoutは住所・注文・明細を1トランザクションで作る。
// 検証に1つでも落ちたら行は一切書かれない。
func (u *CheckoutUsecase) CreateCheckout(ctx context.Context, userID int64, in CreateCheckoutInput) (CreateCheckoutOutput, error) {
	if userID <= 0 {
		return CreateCheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateCreateCheckout(in); err != nil {
		return CreateCheckoutOutput{}, err
	}

	var out CreateCheckoutOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//住所作成（チェックアウトごとのスナップショット）
		addr, err := r.Addresses().Create(ctx, model.Address{
			UserID:  userID,
			Address: strings.TrimSpace(in.Address),
			ZipCode: in.ZipCode,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//商品をまとめて取得
		productIDs := make([]int64, 0, len(in.Items))
		for _, it := range in.Items {
			productIDs = append(productIDs, it.ProductID)
		}
		products, err := r.Products().FindByIDs(ctx, productIDs)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		byID := make(map[int64]model.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		//在庫チェックと小計計算
		items := make([]model.CheckoutItem, 0, len(in.Items))
		var total int64 = 0

		for _, it := range in.Items {
			p, ok := byID[it.ProductID]
			if !ok {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("product %d not found", it.ProductID))
			}
			if p.Stock < it.Quantity {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("insufficient stock for %s", p.Name))
			}

			//購入時点の価格で小計を確定
			subtotal := p.Price * it.Quantity
			total += subtotal

			items = append(items, model.CheckoutItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Subtotal:  subtotal,
			})
		}

		//在庫減算は設定で有効なときだけ
		if u.decrementStock {
			for _, it := range in.Items {
				ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				if !ok {
					return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("insufficient stock for product %d", it.ProductID))
				}
			}
		}

		//注文作成（ステータスはUNPAIDから始まる）
		checkoutID, err := r.Checkouts().Create(ctx, model.Checkout{
			UserID:     userID,
			AddressID:  addr.ID,
			TotalPrice: total,
			Status:     model.OrderStatusUnpaid,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//明細一括作成
		if err := r.CheckoutItems().CreateBulk(ctx, checkoutID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = CreateCheckoutOutput{
			CheckoutID: checkoutID,
			TotalPrice: total,
			Address:    addr,
		}
		return nil
	})

	if err != nil {
		return CreateCheckoutOutput{}, err
	}
	return out, nil
}

func (u *CheckoutUsecase) GetCheckout(ctx context.Context, checkoutID int64) (model.Checkout, error) {
	if checkoutID <= 0 {
		return model.Checkout{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out model.Checkout
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		c, err := r.Checkouts().FindDetailByID(ctx, checkoutID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "checkout not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = c
		return nil
	})

	if err != nil {
		return model.Checkout{}, err
	}
	return out, nil
}
