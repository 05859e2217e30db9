package repoargs

type RepositoryName string

const (
	WalletRepoName      RepositoryName = "wallet"
	TransactionRepoName RepositoryName = "transaction_entry"
)
