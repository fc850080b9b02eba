package accounts

import "github.com/cleared-dev/gstledger/internal/model"

// Well-known account names the tax splitter, reconciler, and note engine route to.
const (
	Cash                          = "Cash"
	Bank                          = "Bank"
	AccountsReceivable            = "Accounts Receivable"
	AccountsPayable               = "Accounts Payable"
	SalesRevenue                  = "Sales Revenue"
	SalesRevenueReturned          = "Sales Revenue Returned"
	RawMaterialsInventory         = "Raw Materials Inventory"
	RawMaterialsInventoryReturned = "Raw Materials Inventory Returned"
	FinishedGoodsInventory        = "Finished Goods Inventory"
	Inventory                     = "Inventory"
	CGSTInput                     = "CGST Input"
	SGSTInput                     = "SGST Input"
	IGSTInput                     = "IGST Input"
	CGSTOutput                    = "CGST Output"
	SGSTOutput                    = "SGST Output"
	IGSTOutput                    = "IGST Output"
)

// DefaultChart returns the default chart of accounts for an Indian GST-registered business.
func DefaultChart() []model.Account {
	return []model.Account{
		{Code: 1010, Name: Cash, Type: model.AccountTypeAsset, Description: "Cash in hand"},
		{Code: 1020, Name: Bank, Type: model.AccountTypeAsset, Description: "Balances held at banks"},
		{Code: 1100, Name: AccountsReceivable, Type: model.AccountTypeAsset, Description: "Amounts owed by customers"},
		{Code: 1200, Name: RawMaterialsInventory, Type: model.AccountTypeAsset},
		{Code: 1210, Name: FinishedGoodsInventory, Type: model.AccountTypeAsset},
		{Code: 1220, Name: Inventory, Type: model.AccountTypeAsset, Description: "Goods held for resale"},
		{Code: 1290, Name: RawMaterialsInventoryReturned, Type: model.AccountTypeAsset, Description: "Contra account for purchase returns"},
		{Code: 1310, Name: CGSTInput, Type: model.AccountTypeAsset, Description: "Central GST input credit"},
		{Code: 1320, Name: SGSTInput, Type: model.AccountTypeAsset, Description: "State GST input credit"},
		{Code: 1330, Name: IGSTInput, Type: model.AccountTypeAsset, Description: "Integrated GST input credit"},
		{Code: 1500, Name: "Fixed Assets", Type: model.AccountTypeAsset},
		{Code: 2010, Name: AccountsPayable, Type: model.AccountTypeLiability, Description: "Amounts owed to suppliers"},
		{Code: 2110, Name: CGSTOutput, Type: model.AccountTypeLiability, Description: "Central GST collected"},
		{Code: 2120, Name: SGSTOutput, Type: model.AccountTypeLiability, Description: "State GST collected"},
		{Code: 2130, Name: IGSTOutput, Type: model.AccountTypeLiability, Description: "Integrated GST collected"},
		{Code: 2300, Name: "Loans Payable", Type: model.AccountTypeLiability},
		{Code: 3010, Name: "Owner's Capital", Type: model.AccountTypeEquity},
		{Code: 3020, Name: "Retained Earnings", Type: model.AccountTypeEquity},
		{Code: 4010, Name: SalesRevenue, Type: model.AccountTypeRevenue},
		{Code: 4090, Name: SalesRevenueReturned, Type: model.AccountTypeRevenue, Description: "Contra account for sales returns"},
		{Code: 4100, Name: "Other Income", Type: model.AccountTypeRevenue},
		{Code: 5010, Name: "Cost of Goods Sold", Type: model.AccountTypeExpense},
		{Code: 5020, Name: "Salaries", Type: model.AccountTypeExpense},
		{Code: 5030, Name: "Rent", Type: model.AccountTypeExpense},
		{Code: 5040, Name: "Utilities", Type: model.AccountTypeExpense},
	}
}
