/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package model

// Product actions understood on commerce events.
const (
	ActionAddToCart      = "add_to_cart"
	ActionAddToWishlist  = "add_to_wishlist"
	ActionCheckout       = "checkout"
	ActionCheckoutOption = "checkout_option"
	ActionClick          = "click"
	ActionViewDetail     = "view_detail"
	ActionPurchase       = "purchase"
	ActionRefund         = "refund"
	ActionRemoveFromCart = "remove_from_cart"
)

type Product struct {
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Category  *string `json:"category,omitempty"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type TransactionAttributes struct {
	ID         *string  `json:"id,omitempty"`
	Revenue    *float64 `json:"revenue,omitempty"`
	Tax        *float64 `json:"tax,omitempty"`
	Shipping   *float64 `json:"shipping,omitempty"`
	CouponCode *string  `json:"coupon_code,omitempty"`
}

// CommerceEvent carries a product action with its products and transaction.
type CommerceEvent struct {
	ProductAction         string                 `json:"product_action,omitempty"`
	Currency              *string                `json:"currency,omitempty"`
	Products              []Product              `json:"products,omitempty"`
	TransactionAttributes *TransactionAttributes `json:"transaction_attributes,omitempty"`
	CustomAttributes      map[string]string      `json:"custom_attributes,omitempty"`
	CustomFlags           map[string][]string    `json:"custom_flags,omitempty"`
}

// FirstFlag returns the first value of a custom flag.
func (e CommerceEvent) FirstFlag(name string) (string, bool) {
	values := e.CustomFlags[name]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}
