package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bank-account-cli/internal/cli"
	apperrors "bank-account-cli/internal/errors"
)

func main() {
	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", appErr.String())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
