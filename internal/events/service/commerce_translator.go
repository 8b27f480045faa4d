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

package service

import (
	"github.com/wso2/analytics-event-adapter/internal/events/model"
	"github.com/wso2/analytics-event-adapter/internal/system/constants"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

// Backend event names.
const (
	eventAddPaymentInfo  = "add_payment_info"
	eventAddShippingInfo = "add_shipping_info"
	eventBeginCheckout   = "begin_checkout"
	eventScreenView      = "screen_view"
	eventSearch          = "search"
	eventSelectContent   = "select_content"
	eventViewItem        = "view_item"
)

// Backend parameter names.
const (
	paramCoupon        = "coupon"
	paramCurrency      = "currency"
	paramItemCategory  = "item_category"
	paramItemID        = "item_id"
	paramItemName      = "item_name"
	paramItems         = "items"
	paramPaymentType   = "payment_type"
	paramPrice         = "price"
	paramQuantity      = "quantity"
	paramScreenName    = "screen_name"
	paramShipping      = "shipping"
	paramShippingTier  = "shipping_tier"
	paramTax           = "tax"
	paramTransactionID = "transaction_id"
	paramValue         = "value"
)

var commerceEventNames = map[string]string{
	model.ActionAddToCart:      model.ActionAddToCart,
	model.ActionAddToWishlist:  model.ActionAddToWishlist,
	model.ActionCheckout:       eventBeginCheckout,
	model.ActionPurchase:       model.ActionPurchase,
	model.ActionRefund:         model.ActionRefund,
	model.ActionRemoveFromCart: model.ActionRemoveFromCart,
	model.ActionClick:          eventSelectContent,
	model.ActionViewDetail:     eventViewItem,
}

// commerceEventName maps a product action to the backend event name. The
// second result is false when nothing should be sent.
func commerceEventName(event model.CommerceEvent) (string, bool) {

	if event.ProductAction == "" {
		return "", false
	}
	if name, ok := commerceEventNames[event.ProductAction]; ok {
		return name, true
	}
	if event.ProductAction != model.ActionCheckoutOption {
		return "", false
	}

	eventType, _ := event.FirstFlag(constants.CommerceEventTypeFlag)
	switch eventType {
	case eventAddShippingInfo, eventAddPaymentInfo:
		return eventType, true
	default:
		log.GetLogger().Warn("Checkout option events need the " + constants.CommerceEventTypeFlag +
			" custom flag set to " + eventAddShippingInfo + " or " + eventAddPaymentInfo + ", event not sent")
		return "", false
	}
}

// commerceParams builds the backend parameters of a commerce event. Later
// entries overwrite earlier ones with the same name.
func commerceParams(event model.CommerceEvent) map[string]interface{} {

	params := map[string]interface{}{}
	if tx := event.TransactionAttributes; tx != nil {
		putString(params, paramTransactionID, tx.ID)
		putFloat(params, paramValue, tx.Revenue)
		putFloat(params, paramTax, tx.Tax)
		putFloat(params, paramShipping, tx.Shipping)
		putString(params, paramCoupon, tx.CouponCode)
	}

	for key, value := range event.CustomAttributes {
		params[key] = value
	}

	if eventType, ok := event.FirstFlag(constants.CommerceEventTypeFlag); ok {
		switch eventType {
		case eventAddShippingInfo:
			if tier, ok := event.FirstFlag(constants.ShippingTierFlag); ok {
				params[paramShippingTier] = tier
			}
		case eventAddPaymentInfo:
			if paymentType, ok := event.FirstFlag(constants.PaymentTypeFlag); ok {
				params[paramPaymentType] = paymentType
			}
		}
	}

	currency := constants.DefaultCurrency
	if event.Currency != nil {
		currency = *event.Currency
	} else {
		log.GetLogger().Info("Currency field not set on the commerce event, defaulting to " + constants.DefaultCurrency)
	}
	params[paramCurrency] = currency

	items := make([]map[string]interface{}, 0, len(event.Products))
	for _, product := range event.Products {
		item := map[string]interface{}{
			paramQuantity: int64(product.Quantity),
			paramItemID:   product.SKU,
			paramItemName: product.Name,
			paramPrice:    product.UnitPrice,
		}
		putString(item, paramItemCategory, product.Category)
		putString(item, paramCurrency, event.Currency)
		items = append(items, item)
	}
	params[paramItems] = items
	return params
}

func putString(params map[string]interface{}, key string, value *string) {
	if value != nil {
		params[key] = *value
	}
}

func putFloat(params map[string]interface{}, key string, value *float64) {
	if value != nil {
		params[key] = *value
	}
}
