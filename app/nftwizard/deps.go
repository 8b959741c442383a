package main

import (
	"crypto/ecdsa"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/nftwizard/base/ctx"
	bEthereum "github.com/x-xyz/nftwizard/base/ethereum"
	"github.com/x-xyz/nftwizard/base/log"
	"github.com/x-xyz/nftwizard/base/metrics"
	"github.com/x-xyz/nftwizard/base/price"
	"github.com/x-xyz/nftwizard/base/txsubmitter"
	"github.com/x-xyz/nftwizard/base/validator"
	"github.com/x-xyz/nftwizard/domain"
	"github.com/x-xyz/nftwizard/domain/account"
	"github.com/x-xyz/nftwizard/domain/listing"
	"github.com/x-xyz/nftwizard/domain/swap"
	"github.com/x-xyz/nftwizard/domain/wizard"
	"github.com/x-xyz/nftwizard/service/cache/provider/primitive"
	"github.com/x-xyz/nftwizard/service/chain"
	"github.com/x-xyz/nftwizard/service/chain/contract"
	"github.com/x-xyz/nftwizard/service/ens"
	accountUsecase "github.com/x-xyz/nftwizard/stores/account/usecase"
	listingRepo "github.com/x-xyz/nftwizard/stores/listing/repository"
	listingUsecase "github.com/x-xyz/nftwizard/stores/listing/usecase"
	swapUsecase "github.com/x-xyz/nftwizard/stores/swap/usecase"
	wizardUsecase "github.com/x-xyz/nftwizard/stores/wizard/usecase"
)

type deps struct {
	network       string
	explorerTxUrl string
	timeout       time.Duration

	sender     domain.TxSender
	account    account.UseCase
	reconciler listing.Reconciler

	mint     wizard.MintUseCase
	transfer wizard.TransferUseCase
	approval wizard.ApprovalUseCase
	listing  wizard.ListingUseCase
	mode     wizard.ModeUseCase
	trade    wizard.TradeUseCase
	// swap is nil when the network has no pool configured
	swap swap.UseCase
}

// app builds its dependencies on first use so that --help never dials the rpc
type app struct {
	once sync.Once
	d    *deps
	err  error
}

func (a *app) deps(c bCtx.Ctx) (*deps, error) {
	a.once.Do(func() {
		a.d, a.err = buildDeps(c)
	})
	return a.d, a.err
}

func contractAddress(sub *viper.Viper, key string, required bool) (domain.Address, error) {
	v := sub.GetString(key)
	if len(v) == 0 && !required {
		return "", nil
	}
	if !validator.IsValidAddress(v) {
		return "", xerrors.Errorf("contract.%s %q: %w", key, v, domain.ErrBadParamInput)
	}
	return domain.Address(v).ToLower(), nil
}

func buildDeps(c bCtx.Ctx) (*deps, error) {
	activeNetwork := viper.GetString("activeNetwork")
	networkInfo := viper.Sub("networks." + activeNetwork)
	contractInfo := viper.Sub("contract." + activeNetwork)
	if networkInfo == nil || contractInfo == nil {
		return nil, xerrors.Errorf("network %q is not configured", activeNetwork)
	}
	chainId := networkInfo.GetInt64("chainId")
	rpcUrl := networkInfo.GetString("rpcUrl")

	nftAddr, err := contractAddress(contractInfo, "nft", true)
	if err != nil {
		return nil, err
	}
	marketAddr, err := contractAddress(contractInfo, "marketplace", true)
	if err != nil {
		return nil, err
	}
	swapAddr, err := contractAddress(contractInfo, "swap", false)
	if err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{
		"network":     activeNetwork,
		"chainId":     chainId,
		"rpcUrl":      rpcUrl,
		"nft":         nftAddr,
		"marketplace": marketAddr,
		"swap":        swapAddr,
	}).Debug("config")

	eth, err := chain.Dial(c, &chain.ClientCfg{
		RpcUrl:         rpcUrl,
		MaxConcurrency: networkInfo.GetInt("maxConcurrency"),
	})
	if err != nil {
		return nil, err
	}
	chainService := chain.NewClient(eth)

	var key *ecdsa.PrivateKey
	if hexKey := viper.GetString("privateKey"); len(hexKey) > 0 {
		if key, err = bEthereum.ParsePrivateKey(hexKey); err != nil {
			return nil, err
		}
	} else {
		c.Warn("no private key configured, running read-only")
	}
	sender := chain.NewSender(&chain.SenderCfg{
		Client:     eth,
		PrivateKey: key,
		ChainId:    big.NewInt(chainId),
	})

	cacheProvider := primitive.NewPrimitive("nftwizard", viper.GetInt("cache.sizeMB"))
	ttl := viper.GetDuration("cache.ttl")

	nft := contract.NewNFT(chainService, nftAddr)
	market := contract.NewMarketplace(chainService, marketAddr, contractInfo.GetUint64("marketplaceFromBlock"))

	acct := accountUsecase.New(&accountUsecase.AccountUseCaseCfg{
		Address:     sender.From(),
		Marketplace: marketAddr,
		NFT:         nft,
		Cache:       cacheProvider,
		Ttl:         ttl,
	})
	reconciler := listingUsecase.New(&listingUsecase.ReconcilerCfg{
		Repo:    listingRepo.NewEventRepo(market),
		Metrics: metrics.New("listing"),
	})

	submitterMetrics := metrics.New("txsubmitter")
	newSubmitter := func(name string) domain.TxSubmitter {
		return txsubmitter.New(&txsubmitter.Cfg{
			Name:           name,
			Sender:         sender,
			PollInterval:   viper.GetDuration("submitter.pollInterval"),
			PollLimit:      viper.GetDuration("submitter.pollLimit"),
			ConfirmTimeout: viper.GetDuration("submitter.confirmTimeout"),
			Metrics:        submitterMetrics,
		})
	}

	var resolver wizard.NameResolver
	if viper.GetBool("ens.enabled") {
		if backend, ok := eth.(bind.ContractBackend); ok {
			resolver = ens.New(&ens.Cfg{
				Backend: backend,
				Cache:   cacheProvider,
				Ttl:     ttl,
			})
		} else {
			c.Warn("rpc client cannot back ens lookups, ens disabled")
		}
	}

	mintPrice, err := price.ParseEther(viper.GetString("wizard.mintPrice"))
	if err != nil {
		return nil, xerrors.Errorf("wizard.mintPrice: %w", err)
	}

	d := &deps{
		network:       activeNetwork,
		explorerTxUrl: networkInfo.GetString("explorerTxUrl"),
		timeout:       viper.GetDuration("context.timeout"),
		sender:        sender,
		account:       acct,
		reconciler:    reconciler,
		mint: wizardUsecase.NewMint(&wizardUsecase.MintCfg{
			NFT:       nftAddr,
			MintPrice: mintPrice,
			Account:   acct,
			Submitter: newSubmitter("mint"),
		}),
		transfer: wizardUsecase.NewTransfer(&wizardUsecase.TransferCfg{
			NFT:       nftAddr,
			Owner:     sender.From(),
			Resolver:  resolver,
			Account:   acct,
			Submitter: newSubmitter("transfer"),
		}),
		approval: wizardUsecase.NewApproval(&wizardUsecase.ApprovalCfg{
			NFT:         nftAddr,
			Marketplace: marketAddr,
			Account:     acct,
			Submitter:   newSubmitter("approval"),
			GracePeriod: viper.GetDuration("wizard.approvalGracePeriod"),
		}),
		listing: wizardUsecase.NewListing(&wizardUsecase.ListingCfg{
			NFT:           nftAddr,
			Marketplace:   marketAddr,
			Fees:          market,
			DefaultFeeBps: viper.GetInt64("wizard.defaultFeeBps"),
			Account:       acct,
			Listings:      reconciler,
			Submitter:     newSubmitter("listing"),
		}),
		mode: wizardUsecase.NewMode(&wizardUsecase.ModeCfg{
			Source: reconciler,
		}),
		trade: wizardUsecase.NewTrade(&wizardUsecase.TradeCfg{
			Marketplace: marketAddr,
			Account:     acct,
			Listings:    reconciler,
			Submitter:   newSubmitter("trade"),
		}),
	}
	if !swapAddr.IsEmpty() {
		d.swap = swapUsecase.New(&swapUsecase.SwapUseCaseCfg{
			Contract:  swapAddr,
			Reader:    contract.NewSimpleSwap(chainService, swapAddr),
			Submitter: newSubmitter("swap"),
			Cache:     cacheProvider,
			Ttl:       ttl,
		})
	}
	return d, nil
}
