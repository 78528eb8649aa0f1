// Command generate-sample writes a synthetic BOOTH order export for trying out
// booth-order-list without real customer data.
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/hinananoha/booth-order-list/pkg/booth"
)

var header = []string{
	"注文番号", "支払方法", "お届け先", "状態", "注文日時", "郵便番号", "都道府県", "市区町村・丁目番地",
	"建物名・部屋番号", "氏名", "電話番号", "注文総額", "送料", "支払手数料", "商品ID / 数量 / 商品名",
}

var products = []booth.LineItem{
	{ProductID: "1000001", Name: "新刊 A5 本文80P"},
	{ProductID: "1000002", Name: "既刊 総集編"},
	{ProductID: "1000003", Name: "アクリルキーホルダー"},
	{ProductID: "1000004", Name: "ポストカードセット"},
	{ProductID: "1000005", Name: "ステッカー"},
}

var statuses = []string{
	booth.StatusTextPaid, booth.StatusTextPaid, booth.StatusTextPaid,
	booth.StatusTextAwaitingPayment, booth.StatusTextCancelled, "発送済み",
}

func main() {
	var (
		count  int
		output string
		days   int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "generate-sample",
		Short: "Write a synthetic BOOTH order export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng := rand.New(rand.NewSource(seed))
			if err := generateExport(rng, count, days, time.Now(), output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d orders to %s\n", count, output)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 50, "number of orders to generate")
	cmd.Flags().StringVarP(&output, "output", "o", "booth_sample.csv", "output file")
	cmd.Flags().IntVar(&days, "days", 60, "spread order dates over this many days back")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateExport(rng *rand.Rand, count, days int, now time.Time, path string) error {
	if days < 1 {
		days = 1
	}

	var buf bytes.Buffer
	buf.WriteString("\ufeff")
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		placed := base.Add(-time.Duration(rng.Intn(days*24*60*60)) * time.Second)

		n := 1 + rng.Intn(3)
		items := make([]booth.LineItem, 0, n)
		for _, idx := range rng.Perm(len(products))[:n] {
			item := products[idx]
			item.Quantity = 1 + rng.Intn(3)
			items = append(items, item)
		}

		row := make([]string, booth.ExportColumns)
		row[booth.ColOrderID] = strconv.Itoa(10000000 + i)
		row[1] = "クレジットカード"
		row[booth.ColStatus] = statuses[rng.Intn(len(statuses))]
		row[booth.ColPlaced] = placed.Format(booth.TimestampLayout)
		row[booth.ColDetail] = booth.FormatDetail(items)
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write order %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
