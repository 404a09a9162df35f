package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSettings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: thaedal-admin settings <payment|payment-update>")
	}

	switch args[0] {
	case "payment":
		return c.runPaymentSettingsShow(ctx)
	case "payment-update":
		return c.runPaymentSettingsUpdate(ctx)
	default:
		return fmt.Errorf("unknown subcommand: %s. Usage: thaedal-admin settings <payment|payment-update>", args[0])
	}
}

func (c *Cli) runPaymentSettingsShow(ctx context.Context) error {
	settings, err := c.client.PaymentSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load payment settings: %w", err)
	}

	fmt.Fprintln(c.out, "=== Payment Settings ===")
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "UPI:         %s\n", yesNo(settings.UPIEnabled))
	fmt.Fprintf(c.out, "Card:        %s\n", yesNo(settings.CardEnabled))
	fmt.Fprintf(c.out, "Net banking: %s\n", yesNo(settings.NetBankingEnabled))
	fmt.Fprintf(c.out, "Gateway key: %s\n", maskKey(settings.GatewayKey))
	return nil
}

func (c *Cli) runPaymentSettingsUpdate(ctx context.Context) error {
	settings, err := c.client.PaymentSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load payment settings: %w", err)
	}

	draft := *settings
	if draft.UPIEnabled, err = c.promptBool("Enable UPI", draft.UPIEnabled); err != nil {
		return err
	}
	if draft.CardEnabled, err = c.promptBool("Enable cards", draft.CardEnabled); err != nil {
		return err
	}
	if draft.NetBankingEnabled, err = c.promptBool("Enable net banking", draft.NetBankingEnabled); err != nil {
		return err
	}
	if draft.GatewayKey, err = c.promptString("Gateway key", draft.GatewayKey); err != nil {
		return err
	}

	if _, err := c.client.UpdatePaymentSettings(ctx, draft); err != nil {
		return describeMutationError(c, err)
	}
	fmt.Fprintln(c.out, "✓ Payment settings updated.")
	return nil
}

// maskKey shows only the last 4 characters of a gateway key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
