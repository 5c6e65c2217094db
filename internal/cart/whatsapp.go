// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cart

import (
	"fmt"
	"net/url"
	"strings"

	"vitrine/internal/models"
)

// CheckoutURL builds a wa.me link that opens a WhatsApp conversation with
// the store, pre-filled with an order summary. phone is the store's number
// in international format without the leading '+'.
func CheckoutURL(phone string, cart models.Cart) string {
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(CheckoutMessage(cart))
}

// CheckoutMessage renders the order summary sent through WhatsApp.
func CheckoutMessage(cart models.Cart) string {
	var b strings.Builder
	b.WriteString("Hello! I would like to place an order:\n\n")
	for _, it := range cart.Items {
		fmt.Fprintf(&b, "• %dx %s — %s\n", it.Quantity, it.Name, FormatPrice(it.PriceCents*int64(it.Quantity)))
	}
	fmt.Fprintf(&b, "\nTotal: %s", FormatPrice(cart.TotalCents()))
	return b.String()
}

// FormatPrice renders cents as a dollar amount, e.g. 123450 → "$1,234.50".
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), frac)
}

// groupThousands inserts comma separators into a non-negative integer.
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
